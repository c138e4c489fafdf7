package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types published after a lifecycle or move operation commits.
const (
	TypeCheckedIn   = "appointment.checked_in"
	TypeStarted     = "appointment.started"
	TypeCompleted   = "appointment.completed"
	TypeCancelled   = "appointment.cancelled"
	TypeNoShow      = "appointment.no_show"
	TypeRescheduled = "appointment.rescheduled"
	TypeMoved       = "appointment.moved"
)

// Event is the advisory notification payload. Delivery is best-effort
// and happens strictly after the owning transaction has committed; the
// transactional core never depends on it.
type Event struct {
	Type          string     `json:"type"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	BranchID      uuid.UUID  `json:"branch_id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	ScheduledDate string     `json:"scheduled_date,omitempty"`
	ScheduledTime string     `json:"scheduled_time,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
