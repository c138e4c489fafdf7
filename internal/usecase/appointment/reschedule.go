package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	"github.com/glamsuite/salon-scheduler/internal/audit"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/events"
	"github.com/glamsuite/salon-scheduler/internal/logger"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

type RescheduleAppointment struct {
	repo           domain.Repository
	events         *events.Dispatcher
	log            *logger.Logger
	maxReschedules int
}

func NewRescheduleAppointment(
	repo domain.Repository,
	events *events.Dispatcher,
	log *logger.Logger,
	maxReschedules int,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:           repo,
		events:         events,
		log:            log,
		maxReschedules: maxReschedules,
	}
}

type RescheduleInput struct {
	TenantID      uuid.UUID `validate:"required"`
	AppointmentID uuid.UUID `validate:"required"`
	UserID        *uuid.UUID
	NewDate       string `validate:"required,caldate"`
	NewTime       string `validate:"required,hhmm"`
}

type RescheduleResult struct {
	Original        *models.Appointment
	New             *models.Appointment
	RescheduleCount int
}

// Execute closes the original record as rescheduled and books its
// successor: the original is never retimed in place, so the chain of
// records linked through OriginalAppointmentID stays queryable. The
// successor's slot passes the same conflict and availability checks a
// calendar move does before anything is written.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*RescheduleResult, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	newDate, err := parseDate(in.NewDate)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	result := &RescheduleResult{}
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		orig, err := tx.GetAppointment(ctx, in.TenantID, in.AppointmentID)
		if err != nil {
			return err
		}

		oldStatus := orig.Status
		successor, err := domain.Reschedule(orig, newDate, in.NewTime, uc.maxReschedules)
		if err != nil {
			return err
		}

		if successor.StylistID != nil {
			booked, err := tx.ListStylistDayAppointments(
				ctx, in.TenantID, successor.BranchID, *successor.StylistID, newDate)
			if err != nil {
				return err
			}
			conflicts := domain.FindOverlapping(
				booked, successor.ScheduledTime, successor.EndTime, orig.ID)
			if len(conflicts) > 0 {
				return apperr.SchedulingConflict(conflicts)
			}

			blocks, err := tx.ListStylistDayBlocks(
				ctx, in.TenantID, *successor.StylistID, newDate)
			if err != nil {
				return err
			}
			if domain.SlotBlocked(blocks, successor.ScheduledTime, successor.EndTime) {
				return apperr.StylistUnavailable()
			}
		}

		if err := tx.UpdateAppointment(ctx, orig); err != nil {
			return err
		}
		if err := tx.CreateAppointment(ctx, successor); err != nil {
			return err
		}

		if err := tx.AppendAuditLog(ctx, audit.NewEntry(audit.Params{
			TenantID:   in.TenantID,
			BranchID:   &orig.BranchID,
			UserID:     in.UserID,
			Action:     audit.ActionRescheduled,
			EntityType: audit.EntityAppointment,
			EntityID:   &orig.ID,
			Old: map[string]any{
				"status":         oldStatus,
				"scheduled_date": formatDate(orig.ScheduledDate),
				"scheduled_time": orig.ScheduledTime,
			},
			New: map[string]any{
				"status":             orig.Status,
				"new_appointment_id": successor.ID,
				"scheduled_date":     formatDate(successor.ScheduledDate),
				"scheduled_time":     successor.ScheduledTime,
				"reschedule_count":   successor.RescheduleCount,
			},
		})); err != nil {
			return err
		}

		result.Original = orig
		result.New = successor
		result.RescheduleCount = successor.RescheduleCount
		return nil
	})
	if err != nil {
		uc.log.Warn("reschedule rejected",
			"tenant_id", in.TenantID,
			"appointment_id", in.AppointmentID,
			"error", err,
		)
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Type:          events.TypeRescheduled,
		TenantID:      result.New.TenantID,
		BranchID:      result.New.BranchID,
		AppointmentID: result.New.ID,
		CustomerID:    result.New.CustomerID,
		ScheduledDate: formatDate(result.New.ScheduledDate),
		ScheduledTime: result.New.ScheduledTime,
	})
	uc.log.Info("appointment rescheduled",
		"tenant_id", in.TenantID,
		"original_id", result.Original.ID,
		"new_id", result.New.ID,
		"reschedule_count", result.RescheduleCount,
	)
	return result, nil
}
