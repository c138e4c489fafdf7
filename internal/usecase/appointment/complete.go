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

type CompleteAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
	log    *logger.Logger
}

func NewCompleteAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
	log *logger.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		events: events,
		log:    log,
	}
}

type CompleteInput struct {
	TenantID      uuid.UUID `validate:"required"`
	AppointmentID uuid.UUID `validate:"required"`
	UserID        *uuid.UUID
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteInput,
) (*models.Appointment, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	var ap *models.Appointment
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		loaded, err := tx.GetAppointment(ctx, in.TenantID, in.AppointmentID)
		if err != nil {
			return err
		}

		old := statusSnapshot(loaded)
		if err := domain.Complete(loaded, time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, loaded); err != nil {
			return err
		}
		if err := tx.AppendAuditLog(ctx, audit.NewEntry(audit.Params{
			TenantID:   in.TenantID,
			BranchID:   &loaded.BranchID,
			UserID:     in.UserID,
			Action:     audit.ActionCompleted,
			EntityType: audit.EntityAppointment,
			EntityID:   &loaded.ID,
			Old:        old,
			New:        statusSnapshot(loaded),
		})); err != nil {
			return err
		}

		ap = loaded
		return nil
	})
	if err != nil {
		uc.log.Warn("complete rejected",
			"tenant_id", in.TenantID,
			"appointment_id", in.AppointmentID,
			"error", err,
		)
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Type:          events.TypeCompleted,
		TenantID:      ap.TenantID,
		BranchID:      ap.BranchID,
		AppointmentID: ap.ID,
		CustomerID:    ap.CustomerID,
		ScheduledDate: formatDate(ap.ScheduledDate),
		ScheduledTime: ap.ScheduledTime,
	})
	uc.log.Info("appointment completed",
		"tenant_id", ap.TenantID,
		"appointment_id", ap.ID,
	)
	return ap, nil
}
