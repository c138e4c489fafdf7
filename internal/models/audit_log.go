package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is append-only; nothing in this service reads it back.
type AuditLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID *uuid.UUID `gorm:"type:uuid" json:"branch_id"`
	UserID   *uuid.UUID `gorm:"type:uuid" json:"user_id"`

	Action     string     `gorm:"size:50;not null" json:"action"`
	EntityType string     `gorm:"size:50" json:"entity_type"`
	EntityID   *uuid.UUID `gorm:"type:uuid" json:"entity_id"`

	OldValues datatypes.JSON `json:"old_values"`
	NewValues datatypes.JSON `json:"new_values"`

	CreatedAt time.Time `json:"created_at"`
}
