package repositories

import (
	"ClinicaViva/database"
	"ClinicaViva/models"
	"context"
	"fmt"
	"time"
)

// ReportRepository reads the flattened appointment rows the financial report
// is built from. Results are never cached; the report is recomputed on every
// fetch.
type ReportRepository struct{}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// EntriesBetween returns the user's appointment rows with the patient name
// joined in, bounded by date (inclusive) and ordered by date then time.
// Appointments whose patient no longer exists are excluded by the inner join.
func (r *ReportRepository) EntriesBetween(ctx context.Context, userID int64, from, to string) ([]models.ReportEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entries []models.ReportEntry
	err := database.DB.WithContext(ctx).
		Table("appointment").
		Select("appointment.id AS id, appointment.date AS date, patient.name AS patient_name, appointment.value AS value").
		Joins("JOIN patient ON patient.id = appointment.patient_id").
		Where("appointment.user_id = ? AND appointment.date >= ? AND appointment.date <= ?", userID, from, to).
		Order("appointment.date ASC, appointment.time ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get report entries: %w", err)
	}
	return entries, nil
}
