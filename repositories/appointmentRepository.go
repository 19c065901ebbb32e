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
	AppointmentCacheExpiry = 7 * 24 * time.Hour
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}

	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		if err := database.DB.Omit("Patient", "AppointmentType").Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return r.invalidate(ctx, appointment.UserID, appointment.ID)
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, userID int64, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(userID, id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedAppointment != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err = database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, phone, email, created_at, created_by")
		}).
		Preload("AppointmentType", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, value, user_id")
		}).
		First(&appointment, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

// GetAll lists a user's appointments ordered by date then time. Appointments
// whose patient row no longer exists are excluded by the inner join. Optional
// from/to bounds filter on the appointment date; date-filtered results bypass
// the cache.
func (r *AppointmentRepository) GetAll(ctx context.Context, userID int64, from, to string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	unfiltered := from == "" && to == ""
	cacheKey := getAppointmentsCacheKey(userID)
	if unfiltered {
		cachedAppointments, err := r.cache.Get(ctx, cacheKey)
		if err == nil && cachedAppointments != "" {
			var appointments []models.Appointment
			if err := json.Unmarshal([]byte(cachedAppointments), &appointments); err == nil {
				return appointments, nil
			}
		} else if err != nil && err != redis.Nil {
			log.Printf("Failed to get appointments from cache: %v", err)
		}
	}

	query := database.DB.
		Joins("JOIN patient ON patient.id = appointment.patient_id").
		Where("appointment.user_id = ?", userID)
	if from != "" {
		query = query.Where("appointment.date >= ?", from)
	}
	if to != "" {
		query = query.Where("appointment.date <= ?", to)
	}

	var appointments []models.Appointment
	err := query.Select("appointment.*").
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, phone, email, created_at, created_by")
		}).
		Preload("AppointmentType", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, value, user_id")
		}).
		Order("appointment.date ASC, appointment.time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	if unfiltered {
		appointmentsJSON, err := json.Marshal(appointments)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal appointments: %w", err)
		}
		if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointments in cache: %v", err)
		}
	}

	return appointments, nil
}

// ExistsForType reports whether any of the user's appointments references the
// given appointment type. Used by the deletion guard; a single match suffices.
func (r *AppointmentRepository) ExistsForType(ctx context.Context, userID int64, typeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ids []string
	err := database.DB.Model(&models.Appointment{}).
		Where("user_id = ? AND appointment_type_id = ?", userID, typeID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("failed to check appointments for type: %w", err)
	}
	return len(ids) > 0, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		result := database.DB.Model(&models.Appointment{}).
			Where("id = ? AND user_id = ?", appointment.ID, appointment.UserID).
			Updates(map[string]interface{}{
				"patient_id":          appointment.PatientID,
				"date":                appointment.Date,
				"time":                appointment.Time,
				"value":               appointment.Value,
				"appointment_type_id": appointment.AppointmentTypeID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update appointment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return r.invalidate(ctx, appointment.UserID, appointment.ID)
	})
}

func (r *AppointmentRepository) Delete(ctx context.Context, userID int64, id string) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", id), func() error {
		result := database.DB.Delete(&models.Appointment{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete appointment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return r.invalidate(ctx, userID, id)
	})
}

// InvalidateCache drops the user's cached appointment list and records. Other
// repositories call it when a mutation elsewhere changes what the appointment
// list would show.
func (r *AppointmentRepository) InvalidateCache(ctx context.Context, userID int64) error {
	if err := r.cache.Delete(ctx, getAppointmentsCacheKey(userID)); err != nil {
		return fmt.Errorf("failed to delete appointments cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, fmt.Sprintf("appointment_cache:%d:*", userID))
}

func (r *AppointmentRepository) invalidate(ctx context.Context, userID int64, id string) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(userID, id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	if err := r.cache.Delete(ctx, getAppointmentsCacheKey(userID)); err != nil {
		return fmt.Errorf("failed to delete appointments cache: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) getAppointmentCacheKey(userID int64, id string) string {
	return fmt.Sprintf("appointment_cache:%d:%s", userID, id)
}

func getAppointmentsCacheKey(userID int64) string {
	return fmt.Sprintf("appointments_cache:%d", userID)
}
