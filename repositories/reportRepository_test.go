package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

// The report reads appointment rows through the same inner join as the
// listing: a row whose patient was deleted contributes nothing to any
// subtotal.
func TestEntriesBetweenJoinsPatientToExcludeOrphans(t *testing.T) {
	mock := withMockDB(t)
	repo := NewReportRepository()

	mock.ExpectQuery(`SELECT appointment\.id AS id, appointment\.date AS date, patient\.name AS patient_name, appointment\.value AS value FROM "appointment" JOIN patient ON patient\.id = appointment\.patient_id`).
		WithArgs(int64(7), "2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patient_name", "value"}).
			AddRow("appt-1", "2026-08-05", "Ana", "100.00").
			AddRow("appt-2", "2026-08-10", "Ana", "50.50"))

	entries, err := repo.EntriesBetween(context.Background(), 7, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].PatientName != "Ana" || !entries[0].Value.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet query expectations: %v", err)
	}
}
