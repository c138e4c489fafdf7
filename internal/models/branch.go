package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Branch struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	// JSON object keyed by lowercase day name ("sunday".."saturday"),
	// each entry {"open":"09:00","close":"21:00","closed":false}.
	WorkingHours datatypes.JSON `json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
