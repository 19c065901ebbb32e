package services

import (
	"ClinicaViva/models"
	"ClinicaViva/utils"
	"context"
	"errors"
	"fmt"
)

// ErrAppointmentTypeInUse is the business-rule refusal returned when deleting
// an appointment type that appointments still reference. It is not a store
// failure; handlers surface it with an explanatory message.
var ErrAppointmentTypeInUse = errors.New("appointment type is in use by existing appointments")

// AppointmentTypeStore is the persistence surface the service drives.
type AppointmentTypeStore interface {
	Create(ctx context.Context, appointmentType *models.AppointmentType) error
	GetByID(ctx context.Context, userID int64, id string) (*models.AppointmentType, error)
	GetAll(ctx context.Context, userID int64) ([]models.AppointmentType, error)
	Update(ctx context.Context, appointmentType *models.AppointmentType) error
	Delete(ctx context.Context, userID int64, id string) error
}

// AppointmentTypeUsage answers whether appointments still reference a type.
type AppointmentTypeUsage interface {
	ExistsForType(ctx context.Context, userID int64, typeID string) (bool, error)
}

type AppointmentTypeService struct {
	store AppointmentTypeStore
	usage AppointmentTypeUsage
}

func NewAppointmentTypeService(store AppointmentTypeStore, usage AppointmentTypeUsage) *AppointmentTypeService {
	return &AppointmentTypeService{store: store, usage: usage}
}

func (s *AppointmentTypeService) Create(ctx context.Context, appointmentType *models.AppointmentType) error {
	if err := utils.ValidateAppointmentTypeData(*appointmentType); err != nil {
		return fmt.Errorf("invalid appointment type data: %w", err)
	}
	return s.store.Create(ctx, appointmentType)
}

func (s *AppointmentTypeService) GetByID(ctx context.Context, userID int64, id string) (*models.AppointmentType, error) {
	return s.store.GetByID(ctx, userID, id)
}

func (s *AppointmentTypeService) GetAll(ctx context.Context, userID int64) ([]models.AppointmentType, error) {
	return s.store.GetAll(ctx, userID)
}

func (s *AppointmentTypeService) Update(ctx context.Context, appointmentType *models.AppointmentType) error {
	if err := utils.ValidateAppointmentTypeData(*appointmentType); err != nil {
		return fmt.Errorf("invalid appointment type data: %w", err)
	}
	return s.store.Update(ctx, appointmentType)
}

// Delete removes an appointment type unless any appointment still references
// it. The check and the delete are two separate calls; an appointment created
// in between can slip past the check, which is an accepted race for this
// workload.
func (s *AppointmentTypeService) Delete(ctx context.Context, userID int64, id string) error {
	inUse, err := s.usage.ExistsForType(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to check appointment type usage: %w", err)
	}
	if inUse {
		return ErrAppointmentTypeInUse
	}
	return s.store.Delete(ctx, userID, id)
}
