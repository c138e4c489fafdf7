package appointment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

// Repository is the persistence collaborator of the scheduling core.
//
// Implementations must run WithinTx callbacks under snapshot isolation
// or stronger: lifecycle and move operations perform check-then-write
// sequences (conflict detection, no-show counters) whose correctness
// depends on the reads staying fresh until commit. The core takes no
// locks of its own.
type Repository interface {
	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		tenantID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListStylistDayAppointments returns one stylist's active
	// appointments on one date, ordered by start time.
	ListStylistDayAppointments(
		ctx context.Context,
		tenantID uuid.UUID,
		branchID uuid.UUID,
		stylistID uuid.UUID,
		date datatypes.Date,
	) ([]models.Appointment, error)

	// ListWindowAppointments returns a branch's active appointments
	// between two dates inclusive, ordered by (date, start time).
	ListWindowAppointments(
		ctx context.Context,
		tenantID uuid.UUID,
		branchID uuid.UUID,
		from datatypes.Date,
		to datatypes.Date,
	) ([]models.Appointment, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		tenantID uuid.UUID,
		customerID uuid.UUID,
	) (*models.Customer, error)

	UpdateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	// -------- Branch / Stylist --------
	GetBranch(
		ctx context.Context,
		tenantID uuid.UUID,
		branchID uuid.UUID,
	) (*models.Branch, error)

	// ListActiveStylists returns a branch's active stylists in a stable
	// order (name, then id); calendar colors key off the position.
	ListActiveStylists(
		ctx context.Context,
		tenantID uuid.UUID,
		branchID uuid.UUID,
	) ([]models.Stylist, error)

	ListStylistBreaks(
		ctx context.Context,
		tenantID uuid.UUID,
		stylistIDs []uuid.UUID,
	) ([]models.StylistBreak, error)

	ListBlockedSlots(
		ctx context.Context,
		tenantID uuid.UUID,
		stylistIDs []uuid.UUID,
		from datatypes.Date,
		to datatypes.Date,
	) ([]models.StylistBlockedSlot, error)

	ListStylistDayBlocks(
		ctx context.Context,
		tenantID uuid.UUID,
		stylistID uuid.UUID,
		date datatypes.Date,
	) ([]models.StylistBlockedSlot, error)

	// -------- Audit --------
	AppendAuditLog(
		ctx context.Context,
		entry *models.AuditLog,
	) error

	// -------- Transaction --------

	// WithinTx runs fn against a transaction-scoped Repository; fn's
	// writes commit together or not at all.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
