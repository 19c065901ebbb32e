package utils

import (
	"ClinicaViva/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

	errNegativeValue = errors.New("value must not be negative")
)

// ValidatePatientData validates patient form input.
func ValidatePatientData(patient models.Patient) error {
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&patient.Email, is.Email),
	)
}

// ValidateAppointmentTypeData validates appointment type form input.
func ValidateAppointmentTypeData(appointmentType models.AppointmentType) error {
	return validation.ValidateStruct(&appointmentType,
		validation.Field(&appointmentType.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&appointmentType.Value, validation.By(validateNonNegative)),
	)
}

// ValidateAppointmentData validates scheduling form input.
func ValidateAppointmentData(appointment models.Appointment) error {
	return validation.ValidateStruct(&appointment,
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.Date, validation.Required, validation.Match(dateRegex).Error("date must be in YYYY-MM-DD format")),
		validation.Field(&appointment.Time, validation.Required, validation.Match(timeRegex).Error("time must be in HH:MM format")),
		validation.Field(&appointment.Value, validation.By(validateNonNegative)),
	)
}

// validateNonNegative rejects negative monetary values.
func validateNonNegative(value interface{}) error {
	v, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("value must be a decimal")
	}
	if v.IsNegative() {
		return errNegativeValue
	}
	return nil
}
