package audit

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

// Audit actions written by the scheduling core. The log is append-only;
// nothing here ever reads it back.
const (
	ActionCheckedIn   = "APPOINTMENT_CHECKED_IN"
	ActionStarted     = "APPOINTMENT_STARTED"
	ActionCompleted   = "APPOINTMENT_COMPLETED"
	ActionCancelled   = "APPOINTMENT_CANCELLED"
	ActionNoShow      = "NO_SHOW_MARKED"
	ActionRescheduled = "APPOINTMENT_RESCHEDULED"
	ActionMoved       = "APPOINTMENT_MOVED"

	EntityAppointment = "appointment"
)

type Params struct {
	TenantID   uuid.UUID
	BranchID   *uuid.UUID
	UserID     *uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Old        any
	New        any
}

// NewEntry builds an audit record for the caller to append inside the
// same transaction as the mutation it describes. Unmarshalable
// snapshots degrade to empty JSON rather than failing the operation.
func NewEntry(p Params) *models.AuditLog {
	return &models.AuditLog{
		ID:         uuid.New(),
		TenantID:   p.TenantID,
		BranchID:   p.BranchID,
		UserID:     p.UserID,
		Action:     p.Action,
		EntityType: p.EntityType,
		EntityID:   p.EntityID,
		OldValues:  marshal(p.Old),
		NewValues:  marshal(p.New),
	}
}

func marshal(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
