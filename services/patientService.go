package services

import (
	"ClinicaViva/models"
	"ClinicaViva/repositories"
	"ClinicaViva/utils"
	"context"
	"fmt"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, userID int64, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, userID, id)
}

func (s *PatientService) GetAll(ctx context.Context, userID int64) ([]models.Patient, error) {
	return s.repository.GetAll(ctx, userID)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}
	return s.repository.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, userID int64, id string) error {
	return s.repository.Delete(ctx, userID, id)
}
