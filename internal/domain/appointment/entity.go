package appointment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timegrid"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates against the transition table and mutates the
// record only after every check passes: a rejected action leaves the
// appointment exactly as it was.

func CheckIn(ap *models.Appointment, now time.Time) error {
	next, err := Transition(Status(ap.Status), VerbCheckIn)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CheckedInAt = &now
	return nil
}

func Start(ap *models.Appointment, now time.Time) error {
	next, err := Transition(Status(ap.Status), VerbStart)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.StartedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	next, err := Transition(Status(ap.Status), VerbComplete)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	next, err := Transition(Status(ap.Status), VerbCancel)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	next, err := Transition(Status(ap.Status), VerbMarkNoShow)
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.NoShowAt = &now
	return nil
}

// Reschedule closes the original record and builds its successor. The
// original is never moved in place: it stays queryable as part of the
// chain linked through OriginalAppointmentID.
func Reschedule(
	orig *models.Appointment,
	newDate datatypes.Date,
	newTime string,
	maxReschedules int,
) (*models.Appointment, error) {

	next, err := Transition(Status(orig.Status), VerbReschedule)
	if err != nil {
		return nil, err
	}

	if orig.RescheduleCount >= maxReschedules {
		return nil, apperr.LimitExceeded(maxReschedules)
	}

	endTime, err := timegrid.CalculateEndTime(newTime, orig.TotalDuration)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	successor := &models.Appointment{
		ID:       uuid.New(),
		TenantID: orig.TenantID,
		BranchID: orig.BranchID,

		CustomerID: orig.CustomerID,
		GuestName:  orig.GuestName,
		GuestPhone: orig.GuestPhone,
		StylistID:  orig.StylistID,

		ScheduledDate: newDate,
		ScheduledTime: newTime,
		TotalDuration: orig.TotalDuration,
		EndTime:       endTime,

		Status: string(InitialStatus()),
		Notes:  orig.Notes,

		RescheduleCount:       orig.RescheduleCount + 1,
		OriginalAppointmentID: &orig.ID,

		// Frozen at booking; a reschedule never re-prices.
		Subtotal:      orig.Subtotal,
		Tax:           orig.Tax,
		Total:         orig.Total,
		PriceLockedAt: orig.PriceLockedAt,
	}

	orig.Status = string(next)
	return successor, nil
}

// Move relocates an appointment to a new date/time (and optionally a
// new stylist) keeping status and duration. Conflict and availability
// checks are the caller's job; a nil stylistID keeps the current one.
func Move(
	ap *models.Appointment,
	newDate datatypes.Date,
	newTime string,
	stylistID *uuid.UUID,
) error {

	if err := CanMove(Status(ap.Status)); err != nil {
		return err
	}

	endTime, err := timegrid.CalculateEndTime(newTime, ap.TotalDuration)
	if err != nil {
		return apperr.InvalidCalendarInput(err.Error())
	}

	ap.ScheduledDate = newDate
	ap.ScheduledTime = newTime
	ap.EndTime = endTime
	if stylistID != nil {
		ap.StylistID = stylistID
	}
	return nil
}
