package appointment

import "github.com/glamsuite/salon-scheduler/internal/models"

// ===============================
// Customer standing
// ===============================

// BookingStatus is the customer's standing tier, distinct from an
// appointment's own status.
type BookingStatus string

const (
	BookingNormal      BookingStatus = "normal"
	BookingVIP         BookingStatus = "vip"
	BookingBlocked     BookingStatus = "blocked"
	BookingRestricted  BookingStatus = "restricted"
	BookingPrepaidOnly BookingStatus = "prepaid_only"
)

// EscalateNoShow maps a customer's prior no-show count to the next
// count and the standing it implies:
//
//	0  -> (1, normal)
//	1  -> (2, prepaid_only)
//	2+ -> (3+, blocked)
//
// Standing derives from count alone, so recomputing for the same count
// is idempotent and blocked is absorbing.
func EscalateNoShow(priorCount int) (int, BookingStatus) {
	newCount := priorCount + 1
	switch {
	case newCount >= 3:
		return newCount, BookingBlocked
	case newCount == 2:
		return newCount, BookingPrepaidOnly
	default:
		return newCount, BookingNormal
	}
}

// ApplyNoShowPolicy escalates the customer in place. The caller must
// have read the customer fresh within the surrounding transaction.
func ApplyNoShowPolicy(c *models.Customer) {
	count, standing := EscalateNoShow(c.NoShowCount)
	c.NoShowCount = count
	c.BookingStatus = string(standing)
}
