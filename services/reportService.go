package services

import (
	"ClinicaViva/models"
	"ClinicaViva/utils"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportSource reads the flattened appointment rows the report is built from.
type ReportSource interface {
	EntriesBetween(ctx context.Context, userID int64, from, to string) ([]models.ReportEntry, error)
}

type ReportService struct {
	source ReportSource
}

func NewReportService(source ReportSource) *ReportService {
	return &ReportService{source: source}
}

// MonthWindow returns the inclusive date bounds of the calendar month
// containing now, formatted as stored appointment dates.
func MonthWindow(now time.Time) (from, to string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// AggregateEntries folds report rows into per-patient subtotals plus a grand
// total. Groups are keyed by patient name and ordered by first appearance in
// the input; rows within a group keep input order. Two patients sharing a
// display name end up merged into one group.
func AggregateEntries(entries []models.ReportEntry) ([]models.PatientTotal, decimal.Decimal) {
	index := make(map[string]int, len(entries))
	patients := []models.PatientTotal{}

	for _, entry := range entries {
		i, ok := index[entry.PatientName]
		if !ok {
			i = len(patients)
			index[entry.PatientName] = i
			patients = append(patients, models.PatientTotal{
				PatientName: entry.PatientName,
				TotalValue:  decimal.Zero,
			})
		}
		patients[i].Appointments = append(patients[i].Appointments, entry)
		patients[i].TotalValue = patients[i].TotalValue.Add(entry.Value)
	}

	grandTotal := decimal.Zero
	for _, patient := range patients {
		grandTotal = grandTotal.Add(patient.TotalValue)
	}

	return patients, grandTotal
}

// Monthly builds the financial report for the calendar month containing now.
func (s *ReportService) Monthly(ctx context.Context, userID int64, now time.Time) (*models.FinancialReport, error) {
	from, to := MonthWindow(now)
	entries, err := s.source.EntriesBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load report entries: %w", err)
	}

	patients, grandTotal := AggregateEntries(entries)
	return &models.FinancialReport{
		Month:      int(now.Month()),
		Year:       now.Year(),
		Patients:   patients,
		GrandTotal: grandTotal,
	}, nil
}

// Export builds the monthly report and serializes it as a spreadsheet,
// returning the localized download file name alongside the content.
func (s *ReportService) Export(ctx context.Context, userID int64, now time.Time) (string, []byte, error) {
	report, err := s.Monthly(ctx, userID, now)
	if err != nil {
		return "", nil, err
	}

	workbook, err := utils.BuildReportWorkbook(report)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build report workbook: %w", err)
	}
	defer workbook.Close()

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize report workbook: %w", err)
	}

	return utils.ReportFileName(now.Month(), now.Year()), buffer.Bytes(), nil
}
