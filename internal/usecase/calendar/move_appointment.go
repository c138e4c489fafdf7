package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/events"
	"github.com/glamsuite/salon-scheduler/internal/logger"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timegrid"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

type MoveAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
	log    *logger.Logger
}

func NewMoveAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
	log *logger.Logger,
) *MoveAppointment {
	return &MoveAppointment{
		repo:   repo,
		events: events,
		log:    log,
	}
}

type MoveInput struct {
	TenantID      uuid.UUID `validate:"required"`
	AppointmentID uuid.UUID `validate:"required"`
	UserID        *uuid.UUID
	NewStylistID  *uuid.UUID
	NewDate       string `validate:"required,caldate"`
	NewTime       string `validate:"required,hhmm"`
}

// Execute relocates an appointment on the calendar grid, keeping its
// status and duration. The proposed slot is checked against the target
// stylist's bookings and blocked intervals before anything is written;
// the update and its audit entry commit together. The check-then-write
// sequence is only safe under the snapshot isolation the repository
// contract requires.
func (uc *MoveAppointment) Execute(
	ctx context.Context,
	in MoveInput,
) (*models.Appointment, error) {

	if err := validators.Struct(in); err != nil {
		return nil, apperr.InvalidCalendarInput(apperr.As(err).Message)
	}

	newDate, err := timegrid.ParseDate(in.NewDate)
	if err != nil {
		return nil, apperr.InvalidCalendarInput(err.Error())
	}
	date := datatypes.Date(newDate)

	var ap *models.Appointment
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		loaded, err := tx.GetAppointment(ctx, in.TenantID, in.AppointmentID)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				return apperr.CalendarNotFound("Appointment")
			}
			return err
		}

		if err := domain.CanMove(domain.Status(loaded.Status)); err != nil {
			return err
		}

		// Duration never changes on a move.
		newEnd, err := timegrid.CalculateEndTime(in.NewTime, loaded.TotalDuration)
		if err != nil {
			return apperr.InvalidCalendarInput(err.Error())
		}

		targetStylist := loaded.StylistID
		if in.NewStylistID != nil {
			targetStylist = in.NewStylistID
		}

		if targetStylist != nil {
			booked, err := tx.ListStylistDayAppointments(
				ctx, in.TenantID, loaded.BranchID, *targetStylist, date)
			if err != nil {
				return err
			}
			conflicts := domain.FindOverlapping(booked, in.NewTime, newEnd, loaded.ID)
			if len(conflicts) > 0 {
				return apperr.SchedulingConflict(conflicts)
			}

			blocks, err := tx.ListStylistDayBlocks(ctx, in.TenantID, *targetStylist, date)
			if err != nil {
				return err
			}
			if domain.SlotBlocked(blocks, in.NewTime, newEnd) {
				return apperr.StylistUnavailable()
			}
		}

		old := map[string]any{
			"scheduled_date": time.Time(loaded.ScheduledDate).Format(timegrid.DateLayout),
			"scheduled_time": loaded.ScheduledTime,
			"stylist_id":     loaded.StylistID,
		}

		if err := domain.Move(loaded, date, in.NewTime, in.NewStylistID); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, loaded); err != nil {
			return err
		}

		if err := tx.AppendAuditLog(ctx, audit.NewEntry(audit.Params{
			TenantID:   in.TenantID,
			BranchID:   &loaded.BranchID,
			UserID:     in.UserID,
			Action:     audit.ActionMoved,
			EntityType: audit.EntityAppointment,
			EntityID:   &loaded.ID,
			Old:        old,
			New: map[string]any{
				"scheduled_date": time.Time(loaded.ScheduledDate).Format(timegrid.DateLayout),
				"scheduled_time": loaded.ScheduledTime,
				"stylist_id":     loaded.StylistID,
			},
		})); err != nil {
			return err
		}

		ap = loaded
		return nil
	})
	if err != nil {
		uc.log.Warn("move rejected",
			"tenant_id", in.TenantID,
			"appointment_id", in.AppointmentID,
			"error", err,
		)
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Type:          events.TypeMoved,
		TenantID:      ap.TenantID,
		BranchID:      ap.BranchID,
		AppointmentID: ap.ID,
		CustomerID:    ap.CustomerID,
		ScheduledDate: time.Time(ap.ScheduledDate).Format(timegrid.DateLayout),
		ScheduledTime: ap.ScheduledTime,
	})
	uc.log.Info("appointment moved",
		"tenant_id", ap.TenantID,
		"appointment_id", ap.ID,
		"scheduled_date", time.Time(ap.ScheduledDate).Format(timegrid.DateLayout),
		"scheduled_time", ap.ScheduledTime,
	)
	return ap, nil
}
