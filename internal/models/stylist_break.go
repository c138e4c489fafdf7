package models

import (
	"time"

	"github.com/google/uuid"
)

// StylistBreak is a recurring time-of-day interval (lunch, cleanup)
// keyed by weekday name; an empty DayOfWeek applies every day.
type StylistBreak struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"stylist_id"`

	DayOfWeek string `gorm:"size:9" json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
