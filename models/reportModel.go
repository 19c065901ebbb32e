package models

import (
	"github.com/shopspring/decimal"
)

// ReportEntry is a flattened appointment row used by the financial report.
// Rows whose patient no longer exists never reach this struct.
type ReportEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	PatientName string          `json:"patient_name"`
	Value       decimal.Decimal `json:"value"`
}

// PatientTotal is a derived per-patient subtotal. It is never persisted and
// is recomputed on every report request. Grouping is by patient name.
type PatientTotal struct {
	PatientName  string          `json:"patient_name"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Appointments []ReportEntry   `json:"appointments"`
}

// FinancialReport is the aggregated output for one calendar month.
type FinancialReport struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Patients   []PatientTotal  `json:"patients"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
