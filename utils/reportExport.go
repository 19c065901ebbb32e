package utils

import (
	"ClinicaViva/models"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ReportSheetName = "Relatório Financeiro"

// monthNames holds the lower-case Portuguese month names used in the
// exported file name, indexed by time.Month.
var monthNames = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// ReportFileName builds the download file name for a monthly report,
// e.g. "relatorio-financeiro-janeiro-2026.xlsx".
func ReportFileName(month time.Month, year int) string {
	return fmt.Sprintf("relatorio-financeiro-%s-%d.xlsx", monthNames[month], year)
}

// ReportContentDisposition builds the attachment header for a report
// download. Month names like março carry non-ASCII bytes, so the file name is
// emitted as an RFC 5987 filename* parameter rather than a raw quoted string.
func ReportContentDisposition(fileName string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
}

// FormatCurrency renders a monetary value in Brazilian format,
// e.g. "R$ 1.150,50".
func FormatCurrency(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	// Insert a dot every three digits from the right
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}

// FormatReportDate converts a stored YYYY-MM-DD date into dd/mm/yyyy.
// Dates that do not parse are returned unchanged.
func FormatReportDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}

// BuildReportWorkbook serializes a financial report into a spreadsheet:
// one row per appointment, a subtotal row per patient, and a grand total row.
func BuildReportWorkbook(report *models.FinancialReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ReportSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	// Fixed presentational column widths
	if err := f.SetColWidth(ReportSheetName, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(ReportSheetName, "B", "B", 14); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(ReportSheetName, "C", "C", 16); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	row := 1
	if err := writeRow(f, row, "Paciente", "Data", "Valor"); err != nil {
		return nil, err
	}
	row++

	for _, patient := range report.Patients {
		for _, entry := range patient.Appointments {
			if err := writeRow(f, row, entry.PatientName, FormatReportDate(entry.Date), FormatCurrency(entry.Value)); err != nil {
				return nil, err
			}
			row++
		}
		subtotal := fmt.Sprintf("Total %s:", patient.PatientName)
		if err := writeRow(f, row, subtotal, "", FormatCurrency(patient.TotalValue)); err != nil {
			return nil, err
		}
		row++
	}

	if err := writeRow(f, row, "Total Geral:", "", FormatCurrency(report.GrandTotal)); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, row int, patient, date, value string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := f.SetSheetRow(ReportSheetName, cell, &[]interface{}{patient, date, value}); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
