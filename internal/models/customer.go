package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// Mutated only by the no-show policy; BookingStatus is derived
	// from NoShowCount, never tracked as independent state.
	NoShowCount   int    `gorm:"default:0" json:"no_show_count"`
	BookingStatus string `gorm:"size:20;default:'normal'" json:"booking_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
