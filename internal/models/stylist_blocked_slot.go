package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StylistBlockedSlot marks a stylist unavailable on one specific date,
// either all day or for the [StartTime, EndTime) window.
type StylistBlockedSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"stylist_id"`

	BlockedDate datatypes.Date `gorm:"index" json:"blocked_date"`
	StartTime   string         `gorm:"size:5" json:"start_time"`
	EndTime     string         `gorm:"size:5" json:"end_time"`
	FullDay     bool           `gorm:"default:false" json:"full_day"`
	Reason      string         `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
