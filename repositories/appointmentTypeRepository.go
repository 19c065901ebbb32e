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
	AppointmentTypeCacheExpiry = 7 * 24 * time.Hour
)

type AppointmentTypeRepository struct {
	cache *cache.Cache
}

func NewAppointmentTypeRepository(cache *cache.Cache) *AppointmentTypeRepository {
	return &AppointmentTypeRepository{cache: cache}
}

func (r *AppointmentTypeRepository) Create(ctx context.Context, appointmentType *models.AppointmentType) error {
	if appointmentType.ID == "" {
		appointmentType.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("appointment_type_lock:%s", appointmentType.ID), func() error {
		if err := database.DB.Create(appointmentType).Error; err != nil {
			return fmt.Errorf("failed to create appointment type: %w", err)
		}
		return r.invalidate(ctx, appointmentType.UserID, appointmentType.ID)
	})
}

func (r *AppointmentTypeRepository) GetByID(ctx context.Context, userID int64, id string) (*models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getTypeCacheKey(userID, id)
	cachedType, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedType != "" {
		var appointmentType models.AppointmentType
		if err := json.Unmarshal([]byte(cachedType), &appointmentType); err == nil {
			return &appointmentType, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointment type from cache: %v", err)
	}

	var appointmentType models.AppointmentType
	err = database.DB.First(&appointmentType, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment type: %w", err)
	}

	typeJSON, err := json.Marshal(appointmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment type: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, typeJSON, AppointmentTypeCacheExpiry); err != nil {
		log.Printf("Failed to set appointment type in cache: %v", err)
	}

	return &appointmentType, nil
}

func (r *AppointmentTypeRepository) GetAll(ctx context.Context, userID int64) ([]models.AppointmentType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getTypesCacheKey(userID)
	cachedTypes, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedTypes != "" {
		var appointmentTypes []models.AppointmentType
		if err := json.Unmarshal([]byte(cachedTypes), &appointmentTypes); err == nil {
			return appointmentTypes, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointment types from cache: %v", err)
	}

	var appointmentTypes []models.AppointmentType
	err = database.DB.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&appointmentTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointment types: %w", err)
	}

	typesJSON, err := json.Marshal(appointmentTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment types: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, typesJSON, AppointmentTypeCacheExpiry); err != nil {
		log.Printf("Failed to set appointment types in cache: %v", err)
	}

	return appointmentTypes, nil
}

func (r *AppointmentTypeRepository) Update(ctx context.Context, appointmentType *models.AppointmentType) error {
	return withLock(ctx, fmt.Sprintf("appointment_type_lock:%s", appointmentType.ID), func() error {
		result := database.DB.Model(&models.AppointmentType{}).
			Where("id = ? AND user_id = ?", appointmentType.ID, appointmentType.UserID).
			Updates(map[string]interface{}{
				"name":  appointmentType.Name,
				"value": appointmentType.Value,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update appointment type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return r.invalidate(ctx, appointmentType.UserID, appointmentType.ID)
	})
}

// Delete removes an appointment type. Callers are expected to have checked
// that no appointment still references it. Both the type caches and the
// appointment caches are re-synced after a successful delete.
func (r *AppointmentTypeRepository) Delete(ctx context.Context, userID int64, id string) error {
	return withLock(ctx, fmt.Sprintf("appointment_type_lock:%s", id), func() error {
		result := database.DB.Delete(&models.AppointmentType{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete appointment type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := r.cache.DeleteBatch(ctx,
			r.getTypeCacheKey(userID, id),
			r.getTypesCacheKey(userID),
			getAppointmentsCacheKey(userID),
		); err != nil {
			return fmt.Errorf("failed to delete appointment type caches: %w", err)
		}
		return r.cache.DeleteAll(ctx, fmt.Sprintf("appointment_cache:%d:*", userID))
	})
}

func (r *AppointmentTypeRepository) invalidate(ctx context.Context, userID int64, id string) error {
	if err := r.cache.Delete(ctx, r.getTypeCacheKey(userID, id)); err != nil {
		return fmt.Errorf("failed to delete appointment type cache: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getTypesCacheKey(userID)); err != nil {
		return fmt.Errorf("failed to delete appointment types cache: %w", err)
	}
	return nil
}

func (r *AppointmentTypeRepository) getTypeCacheKey(userID int64, id string) string {
	return fmt.Sprintf("appointment_type_cache:%d:%s", userID, id)
}

func (r *AppointmentTypeRepository) getTypesCacheKey(userID int64) string {
	return fmt.Sprintf("appointment_types_cache:%d", userID)
}
