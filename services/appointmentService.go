package services

import (
	"ClinicaViva/models"
	"ClinicaViva/repositories"
	"ClinicaViva/utils"
	"context"
	"fmt"
	"time"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	// The scheduling form defaults the date to today
	if appointment.Date == "" {
		appointment.Date = time.Now().Format("2006-01-02")
	}
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return fmt.Errorf("invalid appointment data: %w", err)
	}
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, userID int64, id string) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, userID, id)
}

func (s *AppointmentService) GetAll(ctx context.Context, userID int64, from, to string) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx, userID, from, to)
}

func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return fmt.Errorf("invalid appointment data: %w", err)
	}
	return s.repository.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, userID int64, id string) error {
	return s.repository.Delete(ctx, userID, id)
}
