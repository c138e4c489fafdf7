package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_tenant_date,priority:1" json:"tenant_id"`
	BranchID uuid.UUID `gorm:"type:uuid;not null" json:"branch_id"`

	CustomerID *uuid.UUID `gorm:"type:uuid" json:"customer_id"`
	Customer   *Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`
	GuestName  string     `gorm:"size:100" json:"guest_name"`
	GuestPhone string     `gorm:"size:20" json:"guest_phone"`

	StylistID *uuid.UUID `gorm:"type:uuid;index" json:"stylist_id"`
	Stylist   *Stylist   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	ScheduledDate datatypes.Date `gorm:"index:idx_appointments_tenant_date,priority:2" json:"scheduled_date"`
	ScheduledTime string         `gorm:"size:5" json:"scheduled_time"`
	TotalDuration int            `json:"total_duration"`
	EndTime       string         `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'booked';index" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	RescheduleCount       int        `gorm:"default:0" json:"reschedule_count"`
	OriginalAppointmentID *uuid.UUID `gorm:"type:uuid" json:"original_appointment_id"`

	// Price is frozen at booking time; reschedules copy, never recompute.
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	PriceLockedAt *time.Time `json:"price_locked_at"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	CheckedInAt        *time.Time `json:"checked_in_at"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	NoShowAt           *time.Time `json:"no_show_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
