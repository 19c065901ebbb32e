package utils

import (
	"ClinicaViva/models"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReportFileName(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  string
	}{
		{time.January, 2026, "relatorio-financeiro-janeiro-2026.xlsx"},
		{time.March, 2026, "relatorio-financeiro-março-2026.xlsx"},
		{time.August, 2025, "relatorio-financeiro-agosto-2025.xlsx"},
		{time.December, 2030, "relatorio-financeiro-dezembro-2030.xlsx"},
	}
	for _, c := range cases {
		if got := ReportFileName(c.month, c.year); got != c.want {
			t.Fatalf("ReportFileName(%v, %d) = %q, want %q", c.month, c.year, got, c.want)
		}
	}
}

func TestReportContentDisposition(t *testing.T) {
	// Accented month names must be RFC 5987 encoded, not raw bytes in a
	// quoted string
	header := ReportContentDisposition("relatorio-financeiro-março-2026.xlsx")
	if !strings.HasPrefix(header, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", header)
	}
	if !strings.Contains(header, "filename*=utf-8''") {
		t.Fatalf("expected RFC 5987 filename* parameter, got %q", header)
	}
	if !strings.Contains(header, "mar%C3%A7o") {
		t.Fatalf("expected percent-encoded month, got %q", header)
	}

	// ASCII names come through readable either way
	header = ReportContentDisposition("relatorio-financeiro-agosto-2026.xlsx")
	if !strings.Contains(header, "relatorio-financeiro-agosto-2026.xlsx") {
		t.Fatalf("expected plain file name, got %q", header)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"0", "R$ 0,00"},
		{"150.5", "R$ 150,50"},
		{"1150.50", "R$ 1.150,50"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-42.10", "-R$ 42,10"},
	}
	for _, c := range cases {
		got := FormatCurrency(decimal.RequireFromString(c.value))
		if got != c.want {
			t.Fatalf("FormatCurrency(%s) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestFormatReportDate(t *testing.T) {
	if got := FormatReportDate("2026-08-03"); got != "03/08/2026" {
		t.Fatalf("expected 03/08/2026, got %q", got)
	}
	// Unparseable input passes through untouched
	if got := FormatReportDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func sampleReport() *models.FinancialReport {
	anaRows := []models.ReportEntry{
		{ID: "a1", Date: "2026-08-03", PatientName: "Ana", Value: decimal.RequireFromString("100.00")},
		{ID: "a2", Date: "2026-08-10", PatientName: "Ana", Value: decimal.RequireFromString("50.50")},
	}
	brunoRows := []models.ReportEntry{
		{ID: "b1", Date: "2026-08-12", PatientName: "Bruno", Value: decimal.RequireFromString("75.25")},
	}
	return &models.FinancialReport{
		Month: 8,
		Year:  2026,
		Patients: []models.PatientTotal{
			{PatientName: "Ana", TotalValue: decimal.RequireFromString("150.50"), Appointments: anaRows},
			{PatientName: "Bruno", TotalValue: decimal.RequireFromString("75.25"), Appointments: brunoRows},
		},
		GrandTotal: decimal.RequireFromString("225.75"),
	}
}

func TestBuildReportWorkbook(t *testing.T) {
	workbook, err := BuildReportWorkbook(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(ReportSheetName)
	if err != nil {
		t.Fatalf("failed to read sheet back: %v", err)
	}

	want := [][]string{
		{"Paciente", "Data", "Valor"},
		{"Ana", "03/08/2026", "R$ 100,00"},
		{"Ana", "10/08/2026", "R$ 50,50"},
		{"Total Ana:", "", "R$ 150,50"},
		{"Bruno", "12/08/2026", "R$ 75,25"},
		{"Total Bruno:", "", "R$ 75,25"},
		{"Total Geral:", "", "R$ 225,75"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, wantRow := range want {
		for j, wantCell := range wantRow {
			if wantCell == "" {
				continue
			}
			if j >= len(rows[i]) || rows[i][j] != wantCell {
				t.Fatalf("row %d col %d: expected %q, got %v", i+1, j+1, wantCell, rows[i])
			}
		}
	}
}

func TestBuildReportWorkbookEmptyReport(t *testing.T) {
	report := &models.FinancialReport{
		Month:      8,
		Year:       2026,
		GrandTotal: decimal.Zero,
	}

	workbook, err := BuildReportWorkbook(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(ReportSheetName)
	if err != nil {
		t.Fatalf("failed to read sheet back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + grand total rows, got %d", len(rows))
	}
	if rows[1][0] != "Total Geral:" {
		t.Fatalf("expected grand total row, got %v", rows[1])
	}
}

func TestBuildReportWorkbookSerializes(t *testing.T) {
	workbook, err := BuildReportWorkbook(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer workbook.Close()

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	if buffer.Len() == 0 {
		t.Fatal("expected non-empty workbook content")
	}
}
