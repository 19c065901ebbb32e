package services

import (
	"ClinicaViva/models"
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

// Invalid input is rejected before the repository is touched, so these
// services can be constructed without one.

func TestPatientServiceCreateRejectsInvalid(t *testing.T) {
	service := NewPatientService(nil)

	if err := service.Create(context.Background(), &models.Patient{Email: "not-an-email"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPatientServiceUpdateRejectsInvalid(t *testing.T) {
	service := NewPatientService(nil)

	if err := service.Update(context.Background(), &models.Patient{}); err == nil {
		t.Fatal("expected validation error for missing name")
	}
}

func TestAppointmentServiceCreateRejectsInvalid(t *testing.T) {
	service := NewAppointmentService(nil)

	appointment := &models.Appointment{
		PatientID: "patient-1",
		Time:      "bad-time",
		Value:     decimal.RequireFromString("50.00"),
	}
	if err := service.Create(context.Background(), appointment); err == nil {
		t.Fatal("expected validation error for malformed time")
	}
	// The missing date was defaulted before validation ran
	if appointment.Date == "" {
		t.Fatal("expected date to default to today")
	}
}

func TestAppointmentServiceUpdateRejectsInvalid(t *testing.T) {
	service := NewAppointmentService(nil)

	appointment := &models.Appointment{
		PatientID: "patient-1",
		Date:      "2026-08-03",
		Time:      "14:30",
		Value:     decimal.RequireFromString("-1.00"),
	}
	if err := service.Update(context.Background(), appointment); err == nil {
		t.Fatal("expected validation error for negative value")
	}
}
