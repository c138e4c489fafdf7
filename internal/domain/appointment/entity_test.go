package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

func testDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func bookedAppointment() *models.Appointment {
	stylistID := uuid.New()
	locked := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &models.Appointment{
		ID:            uuid.New(),
		TenantID:      uuid.New(),
		BranchID:      uuid.New(),
		StylistID:     &stylistID,
		GuestName:     "Dana",
		GuestPhone:    "555-0101",
		ScheduledDate: testDate(2026, 2, 10),
		ScheduledTime: "10:00",
		TotalDuration: 60,
		EndTime:       "11:00",
		Status:        string(StatusBooked),
		Subtotal:      80,
		Tax:           8,
		Total:         88,
		PriceLockedAt: &locked,
	}
}

func TestLifecycleActionsStampTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 10, 10, 5, 0, 0, time.UTC)

	ap := bookedAppointment()
	if err := CheckIn(ap, now); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if ap.Status != string(StatusCheckedIn) || ap.CheckedInAt == nil {
		t.Fatalf("after CheckIn: status=%s checkedInAt=%v", ap.Status, ap.CheckedInAt)
	}

	if err := Start(ap, now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if ap.Status != string(StatusInProgress) || ap.StartedAt == nil {
		t.Fatalf("after Start: status=%s startedAt=%v", ap.Status, ap.StartedAt)
	}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("after Complete: status=%s completedAt=%v", ap.Status, ap.CompletedAt)
	}
}

func TestCancelRecordsReason(t *testing.T) {
	now := time.Now()
	ap := bookedAppointment()

	if err := Cancel(ap, "customer called in", now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %s", ap.Status)
	}
	if ap.CancellationReason != "customer called in" {
		t.Errorf("reason = %q", ap.CancellationReason)
	}
	if ap.CancelledAt == nil {
		t.Error("cancelledAt not stamped")
	}
}

func TestMarkNoShowStamps(t *testing.T) {
	now := time.Now()
	ap := bookedAppointment()

	if err := MarkNoShow(ap, now); err != nil {
		t.Fatalf("MarkNoShow: %v", err)
	}
	if ap.Status != string(StatusNoShow) || ap.NoShowAt == nil {
		t.Fatalf("after MarkNoShow: status=%s noShowAt=%v", ap.Status, ap.NoShowAt)
	}
}

func TestRejectedActionLeavesRecordUntouched(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		status Status
		act    func(*models.Appointment) error
	}{
		{"check in from in_progress", StatusInProgress, func(ap *models.Appointment) error { return CheckIn(ap, now) }},
		{"check in from checked_in", StatusCheckedIn, func(ap *models.Appointment) error { return CheckIn(ap, now) }},
		{"start from booked", StatusBooked, func(ap *models.Appointment) error { return Start(ap, now) }},
		{"complete from booked", StatusBooked, func(ap *models.Appointment) error { return Complete(ap, now) }},
		{"cancel from completed", StatusCompleted, func(ap *models.Appointment) error { return Cancel(ap, "x", now) }},
		{"no-show from cancelled", StatusCancelled, func(ap *models.Appointment) error { return MarkNoShow(ap, now) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ap := bookedAppointment()
			ap.Status = string(c.status)
			before := *ap

			err := c.act(ap)
			if err == nil {
				t.Fatal("action allowed, want rejection")
			}
			if !apperr.IsKind(err, apperr.KindIllegalTransition) {
				t.Fatalf("error kind = %v", err)
			}
			if *ap != before {
				t.Errorf("rejected action mutated the record: %+v != %+v", *ap, before)
			}
		})
	}
}

func TestRescheduleBuildsSuccessor(t *testing.T) {
	orig := bookedAppointment()
	customerID := uuid.New()
	orig.CustomerID = &customerID

	successor, err := Reschedule(orig, testDate(2026, 2, 12), "14:30", 3)
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	if orig.Status != string(StatusRescheduled) {
		t.Errorf("original status = %s, want rescheduled", orig.Status)
	}
	if successor.Status != string(StatusBooked) {
		t.Errorf("successor status = %s, want booked", successor.Status)
	}
	if successor.RescheduleCount != orig.RescheduleCount+1 {
		t.Errorf("successor count = %d, want %d", successor.RescheduleCount, orig.RescheduleCount+1)
	}
	if successor.OriginalAppointmentID == nil || *successor.OriginalAppointmentID != orig.ID {
		t.Error("successor does not link back to the original")
	}
	if successor.ID == orig.ID {
		t.Error("successor reuses the original id")
	}
	if successor.ScheduledTime != "14:30" || successor.EndTime != "15:30" {
		t.Errorf("successor window = %s-%s", successor.ScheduledTime, successor.EndTime)
	}
	if successor.TotalDuration != orig.TotalDuration {
		t.Errorf("successor duration = %d", successor.TotalDuration)
	}

	// Commercial fields ride along unchanged.
	if successor.Subtotal != orig.Subtotal || successor.Tax != orig.Tax || successor.Total != orig.Total {
		t.Errorf("successor price = %v/%v/%v", successor.Subtotal, successor.Tax, successor.Total)
	}
	if successor.PriceLockedAt == nil || !successor.PriceLockedAt.Equal(*orig.PriceLockedAt) {
		t.Error("price lock not carried over")
	}
	if successor.CustomerID == nil || *successor.CustomerID != customerID {
		t.Error("customer linkage not carried over")
	}
	if successor.StylistID == nil || *successor.StylistID != *orig.StylistID {
		t.Error("stylist not carried over")
	}
}

func TestRescheduleLimit(t *testing.T) {
	orig := bookedAppointment()
	orig.RescheduleCount = 3

	_, err := Reschedule(orig, testDate(2026, 2, 12), "14:30", 3)
	if err == nil {
		t.Fatal("fourth reschedule allowed")
	}
	if !apperr.IsKind(err, apperr.KindLimitExceeded) {
		t.Fatalf("error kind = %v", err)
	}
	if got := apperr.As(err).Message; got != "Maximum reschedule limit (3) reached" {
		t.Errorf("message = %q", got)
	}
	if orig.Status != string(StatusBooked) {
		t.Errorf("rejected reschedule mutated the original: %s", orig.Status)
	}
}

func TestRescheduleStatusCheckedBeforeLimit(t *testing.T) {
	orig := bookedAppointment()
	orig.Status = string(StatusCompleted)
	orig.RescheduleCount = 3

	_, err := Reschedule(orig, testDate(2026, 2, 12), "14:30", 3)
	if !apperr.IsKind(err, apperr.KindIllegalTransition) {
		t.Fatalf("error = %v, want illegal transition first", err)
	}
}

func TestMove(t *testing.T) {
	ap := bookedAppointment()
	origStylist := *ap.StylistID

	if err := Move(ap, testDate(2026, 2, 11), "16:00", nil); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if ap.ScheduledTime != "16:00" || ap.EndTime != "17:00" {
		t.Errorf("window = %s-%s", ap.ScheduledTime, ap.EndTime)
	}
	if ap.StylistID == nil || *ap.StylistID != origStylist {
		t.Error("nil stylist arg must keep the current stylist")
	}
	if ap.Status != string(StatusBooked) {
		t.Errorf("move changed status to %s", ap.Status)
	}

	newStylist := uuid.New()
	if err := Move(ap, testDate(2026, 2, 11), "16:00", &newStylist); err != nil {
		t.Fatalf("Move with stylist: %v", err)
	}
	if *ap.StylistID != newStylist {
		t.Error("stylist not reassigned")
	}
}

func TestMoveRejectedFromTerminalStatus(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled} {
		ap := bookedAppointment()
		ap.Status = string(s)
		before := *ap

		err := Move(ap, testDate(2026, 2, 11), "16:00", nil)
		if err == nil {
			t.Fatalf("Move from %s allowed", s)
		}
		if !apperr.HasCode(err, apperr.CodeIllegalMove) {
			t.Errorf("Move from %s: code = %v", s, err)
		}
		if *ap != before {
			t.Errorf("rejected move mutated the record")
		}
	}
}
