package repositories

import (
	"ClinicaViva/cache"
	"ClinicaViva/database"
	"ClinicaViva/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("patient_lock:%s", patient.ID), func() error {
		if err := database.DB.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return r.invalidate(ctx, patient.CreatedBy, patient.ID)
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, userID int64, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(userID, id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.Select("id, name, phone, email, created_at, created_by").
		First(&patient, "id = ? AND created_by = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context, userID int64) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientsCacheKey(userID)
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	err = database.DB.Select("id, name, phone, email, created_at, created_by").
		Where("created_by = ?", userID).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", patient.ID), func() error {
		result := database.DB.Model(&models.Patient{}).
			Where("id = ? AND created_by = ?", patient.ID, patient.CreatedBy).
			Updates(map[string]interface{}{
				"name":  patient.Name,
				"phone": patient.Phone,
				"email": patient.Email,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update patient: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// A renamed patient changes the embedded name in appointment lists too
		if err := r.invalidate(ctx, patient.CreatedBy, patient.ID); err != nil {
			return err
		}
		return r.cache.Delete(ctx, getAppointmentsCacheKey(patient.CreatedBy))
	})
}

func (r *PatientRepository) Delete(ctx context.Context, userID int64, id string) error {
	return withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		result := database.DB.Delete(&models.Patient{}, "id = ? AND created_by = ?", id, userID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete patient: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// Appointments referencing this patient are now orphans and drop out
		// of list views, so their caches must be re-synced as well.
		if err := r.invalidate(ctx, userID, id); err != nil {
			return err
		}
		if err := r.cache.Delete(ctx, getAppointmentsCacheKey(userID)); err != nil {
			return fmt.Errorf("failed to delete appointments cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, fmt.Sprintf("appointment_cache:%d:*", userID))
	})
}

func (r *PatientRepository) invalidate(ctx context.Context, userID int64, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(userID, id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getPatientsCacheKey(userID)); err != nil {
		return fmt.Errorf("failed to delete patients cache: %w", err)
	}
	return nil
}

func (r *PatientRepository) getPatientCacheKey(userID int64, id string) string {
	return fmt.Sprintf("patient_cache:%d:%s", userID, id)
}

func (r *PatientRepository) getPatientsCacheKey(userID int64) string {
	return fmt.Sprintf("patients_cache:%d", userID)
}
