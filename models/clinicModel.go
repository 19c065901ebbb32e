package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient model
type Patient struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	Name         string        `gorm:"column:name;not null;index" json:"name"`
	Phone        string        `gorm:"column:phone" json:"phone"`
	Email        string        `gorm:"column:email" json:"email"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	CreatedBy    int64         `gorm:"column:created_by;not null;index" json:"created_by"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// AppointmentType model
type AppointmentType struct {
	ID     string          `gorm:"primaryKey;column:id" json:"id"`
	Name   string          `gorm:"column:name;not null" json:"name"`
	Value  decimal.Decimal `gorm:"column:value;type:decimal(10,2);check:value >= 0;not null" json:"value"`
	UserID int64           `gorm:"column:user_id;not null;index" json:"user_id"`
}

func (AppointmentType) TableName() string {
	return "appointment_type"
}

// Appointment model
type Appointment struct {
	ID                string           `gorm:"primaryKey;column:id" json:"id"`
	PatientID         string           `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Date              string           `gorm:"column:date;not null;index" json:"date"`
	Time              string           `gorm:"column:time;not null" json:"time"`
	Value             decimal.Decimal  `gorm:"column:value;type:decimal(10,2);check:value >= 0;not null" json:"value"`
	AppointmentTypeID *string          `gorm:"column:appointment_type_id;index" json:"appointment_type_id"`
	UserID            int64            `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient           Patient          `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	AppointmentType   *AppointmentType `gorm:"foreignKey:AppointmentTypeID;references:ID" json:"appointment_type,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}
