package services

import (
	"ClinicaViva/models"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func entry(id, date, patient, value string) models.ReportEntry {
	return models.ReportEntry{
		ID:          id,
		Date:        date,
		PatientName: patient,
		Value:       decimal.RequireFromString(value),
	}
}

func TestAggregateEntriesGroupsByPatientName(t *testing.T) {
	entries := []models.ReportEntry{
		entry("a1", "2026-08-03", "Ana", "100.00"),
		entry("a2", "2026-08-10", "Ana", "50.50"),
		entry("b1", "2026-08-12", "Bruno", "75.25"),
	}

	patients, grandTotal := AggregateEntries(entries)

	if len(patients) != 2 {
		t.Fatalf("expected 2 patient groups, got %d", len(patients))
	}
	if patients[0].PatientName != "Ana" || patients[1].PatientName != "Bruno" {
		t.Fatalf("expected first-appearance order [Ana Bruno], got [%s %s]", patients[0].PatientName, patients[1].PatientName)
	}
	if !patients[0].TotalValue.Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("expected Ana subtotal 150.50, got %s", patients[0].TotalValue)
	}
	if len(patients[0].Appointments) != 2 {
		t.Fatalf("expected 2 entries for Ana, got %d", len(patients[0].Appointments))
	}
	if !patients[1].TotalValue.Equal(decimal.RequireFromString("75.25")) {
		t.Fatalf("expected Bruno subtotal 75.25, got %s", patients[1].TotalValue)
	}
	if !grandTotal.Equal(decimal.RequireFromString("225.75")) {
		t.Fatalf("expected grand total 225.75, got %s", grandTotal)
	}
}

func TestAggregateEntriesEmptyInput(t *testing.T) {
	patients, grandTotal := AggregateEntries(nil)

	if len(patients) != 0 {
		t.Fatalf("expected no patient groups, got %d", len(patients))
	}
	if !grandTotal.IsZero() {
		t.Fatalf("expected zero grand total, got %s", grandTotal)
	}
}

func TestAggregateEntriesZeroValueKeepsGroup(t *testing.T) {
	patients, grandTotal := AggregateEntries([]models.ReportEntry{
		entry("a1", "2026-08-03", "Ana", "0.00"),
	})

	if len(patients) != 1 {
		t.Fatalf("expected 1 patient group, got %d", len(patients))
	}
	if !grandTotal.IsZero() {
		t.Fatalf("expected zero grand total, got %s", grandTotal)
	}
}

func TestAggregateEntriesSubtotalsSumToGrandTotal(t *testing.T) {
	entries := []models.ReportEntry{
		entry("1", "2026-08-01", "Carla", "10.01"),
		entry("2", "2026-08-02", "Diego", "20.02"),
		entry("3", "2026-08-03", "Carla", "0.97"),
		entry("4", "2026-08-04", "Elisa", "123.45"),
		entry("5", "2026-08-05", "Diego", "999.99"),
	}

	patients, grandTotal := AggregateEntries(entries)

	sum := decimal.Zero
	for _, patient := range patients {
		sum = sum.Add(patient.TotalValue)
	}
	if !sum.Equal(grandTotal) {
		t.Fatalf("subtotals sum %s does not match grand total %s", sum, grandTotal)
	}
}

func TestAggregateEntriesIdempotent(t *testing.T) {
	entries := []models.ReportEntry{
		entry("1", "2026-08-01", "Ana", "33.33"),
		entry("2", "2026-08-02", "Bruno", "66.67"),
		entry("3", "2026-08-03", "Ana", "10.00"),
	}

	first, firstTotal := AggregateEntries(entries)
	second, secondTotal := AggregateEntries(entries)

	if !firstTotal.Equal(secondTotal) {
		t.Fatalf("grand totals differ: %s vs %s", firstTotal, secondTotal)
	}
	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].PatientName != second[i].PatientName || !first[i].TotalValue.Equal(second[i].TotalValue) {
			t.Fatalf("group %d differs between runs", i)
		}
	}
}

func TestAggregateEntriesMergesSharedNames(t *testing.T) {
	// Two distinct patients with the same display name collapse into one
	// group; grouping is by name, not by patient ID.
	entries := []models.ReportEntry{
		entry("a1", "2026-08-01", "João Silva", "100.00"),
		entry("b1", "2026-08-02", "João Silva", "200.00"),
	}

	patients, _ := AggregateEntries(entries)

	if len(patients) != 1 {
		t.Fatalf("expected 1 merged group, got %d", len(patients))
	}
	if !patients[0].TotalValue.Equal(decimal.RequireFromString("300.00")) {
		t.Fatalf("expected merged subtotal 300.00, got %s", patients[0].TotalValue)
	}
}

func TestAggregateEntriesOrderNotAlphabetical(t *testing.T) {
	entries := []models.ReportEntry{
		entry("1", "2026-08-01", "Zeca", "10.00"),
		entry("2", "2026-08-02", "Alice", "20.00"),
	}

	patients, _ := AggregateEntries(entries)

	if patients[0].PatientName != "Zeca" {
		t.Fatalf("expected Zeca first by appearance order, got %s", patients[0].PatientName)
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, time.February, 15, 10, 30, 0, 0, time.UTC)
	from, to := MonthWindow(now)

	if from != "2026-02-01" {
		t.Fatalf("expected month start 2026-02-01, got %s", from)
	}
	if to != "2026-02-28" {
		t.Fatalf("expected month end 2026-02-28, got %s", to)
	}
}

func TestMonthWindowLeapYear(t *testing.T) {
	now := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, to := MonthWindow(now)

	if to != "2028-02-29" {
		t.Fatalf("expected leap-year month end 2028-02-29, got %s", to)
	}
}

type stubReportSource struct {
	entries  []models.ReportEntry
	lastFrom string
	lastTo   string
}

func (s *stubReportSource) EntriesBetween(ctx context.Context, userID int64, from, to string) ([]models.ReportEntry, error) {
	s.lastFrom = from
	s.lastTo = to
	return s.entries, nil
}

func TestMonthlyUsesCalendarMonthWindow(t *testing.T) {
	source := &stubReportSource{entries: []models.ReportEntry{
		entry("1", "2026-08-05", "Ana", "42.00"),
	}}
	service := NewReportService(source)

	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	report, err := service.Monthly(context.Background(), 7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if source.lastFrom != "2026-08-01" || source.lastTo != "2026-08-31" {
		t.Fatalf("expected window 2026-08-01..2026-08-31, got %s..%s", source.lastFrom, source.lastTo)
	}
	if report.Month != 8 || report.Year != 2026 {
		t.Fatalf("expected report for 8/2026, got %d/%d", report.Month, report.Year)
	}
	if !report.GrandTotal.Equal(decimal.RequireFromString("42.00")) {
		t.Fatalf("expected grand total 42.00, got %s", report.GrandTotal)
	}
}
