package appointment

import (
	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timegrid"
)

// ===============================
// Conflict detection
// ===============================

// FindOverlapping returns every candidate whose [ScheduledTime, EndTime)
// window intersects [start, end), skipping excludeID (the appointment
// being placed). Candidates are expected to be the active appointments
// of one stylist on one date; full records come back so the caller can
// show the user what collides.
func FindOverlapping(
	candidates []models.Appointment,
	start string,
	end string,
	excludeID uuid.UUID,
) []models.Appointment {

	var conflicts []models.Appointment
	for _, c := range candidates {
		if c.ID == excludeID {
			continue
		}
		if timegrid.Overlaps(c.ScheduledTime, c.EndTime, start, end) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

// SlotBlocked reports whether any blocked slot rules out [start, end):
// a full-day block always does, a timed block when the windows overlap.
func SlotBlocked(blocks []models.StylistBlockedSlot, start, end string) bool {
	for _, b := range blocks {
		if b.FullDay {
			return true
		}
		if timegrid.Overlaps(b.StartTime, b.EndTime, start, end) {
			return true
		}
	}
	return false
}

// HasFullDayBlock reports whether any of the blocks covers a whole day.
// Callers filter to a single date first.
func HasFullDayBlock(blocks []models.StylistBlockedSlot) bool {
	for _, b := range blocks {
		if b.FullDay {
			return true
		}
	}
	return false
}
