package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/events"
	"github.com/glamsuite/salon-scheduler/internal/logger"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

type MarkNoShow struct {
	repo   domain.Repository
	events *events.Dispatcher
	log    *logger.Logger
}

func NewMarkNoShow(
	repo domain.Repository,
	events *events.Dispatcher,
	log *logger.Logger,
) *MarkNoShow {
	return &MarkNoShow{
		repo:   repo,
		events: events,
		log:    log,
	}
}

type MarkNoShowInput struct {
	TenantID      uuid.UUID `validate:"required"`
	AppointmentID uuid.UUID `validate:"required"`
	UserID        *uuid.UUID
}

type MarkNoShowResult struct {
	Appointment *models.Appointment
	Customer    *models.Customer
}

// Execute marks the appointment no-show and escalates the customer's
// standing off their running no-show count. The count is read fresh
// inside the transaction so concurrent markings cannot lose updates;
// guest bookings have no customer record and skip escalation.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	in MarkNoShowInput,
) (*MarkNoShowResult, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	result := &MarkNoShowResult{}
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		loaded, err := tx.GetAppointment(ctx, in.TenantID, in.AppointmentID)
		if err != nil {
			return err
		}

		old := statusSnapshot(loaded)
		if err := domain.MarkNoShow(loaded, time.Now().UTC()); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, loaded); err != nil {
			return err
		}

		newValues := map[string]any{
			"status": loaded.Status,
		}

		if loaded.CustomerID != nil {
			customer, err := tx.GetCustomer(ctx, in.TenantID, *loaded.CustomerID)
			if err != nil {
				return err
			}
			old["no_show_count"] = customer.NoShowCount
			old["booking_status"] = customer.BookingStatus

			domain.ApplyNoShowPolicy(customer)
			if err := tx.UpdateCustomer(ctx, customer); err != nil {
				return err
			}
			newValues["no_show_count"] = customer.NoShowCount
			newValues["booking_status"] = customer.BookingStatus
			result.Customer = customer
		}

		if err := tx.AppendAuditLog(ctx, audit.NewEntry(audit.Params{
			TenantID:   in.TenantID,
			BranchID:   &loaded.BranchID,
			UserID:     in.UserID,
			Action:     audit.ActionNoShow,
			EntityType: audit.EntityAppointment,
			EntityID:   &loaded.ID,
			Old:        old,
			New:        newValues,
		})); err != nil {
			return err
		}

		result.Appointment = loaded
		return nil
	})
	if err != nil {
		uc.log.Warn("no-show rejected",
			"tenant_id", in.TenantID,
			"appointment_id", in.AppointmentID,
			"error", err,
		)
		return nil, err
	}

	ap := result.Appointment
	uc.events.Dispatch(events.Event{
		Type:          events.TypeNoShow,
		TenantID:      ap.TenantID,
		BranchID:      ap.BranchID,
		AppointmentID: ap.ID,
		CustomerID:    ap.CustomerID,
		ScheduledDate: formatDate(ap.ScheduledDate),
		ScheduledTime: ap.ScheduledTime,
	})
	uc.log.Info("appointment marked no-show",
		"tenant_id", ap.TenantID,
		"appointment_id", ap.ID,
	)
	return result, nil
}
