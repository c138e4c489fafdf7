package appointment

import (
	"testing"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

func TestEscalateNoShowLadder(t *testing.T) {
	cases := []struct {
		prior      int
		wantCount  int
		wantStatus BookingStatus
	}{
		{0, 1, BookingNormal},
		{1, 2, BookingPrepaidOnly},
		{2, 3, BookingBlocked},
		{3, 4, BookingBlocked},
		{7, 8, BookingBlocked}, // blocked is absorbing
	}

	for _, c := range cases {
		count, status := EscalateNoShow(c.prior)
		if count != c.wantCount || status != c.wantStatus {
			t.Errorf("EscalateNoShow(%d) = (%d, %s), want (%d, %s)",
				c.prior, count, status, c.wantCount, c.wantStatus)
		}

		// Derived from count alone: recomputing is idempotent.
		again, againStatus := EscalateNoShow(c.prior)
		if again != count || againStatus != status {
			t.Errorf("EscalateNoShow(%d) not deterministic", c.prior)
		}
	}
}

func TestApplyNoShowPolicy(t *testing.T) {
	c := &models.Customer{
		ID:            uuid.New(),
		NoShowCount:   1,
		BookingStatus: string(BookingNormal),
	}

	ApplyNoShowPolicy(c)
	if c.NoShowCount != 2 || c.BookingStatus != string(BookingPrepaidOnly) {
		t.Errorf("after policy: count=%d status=%s", c.NoShowCount, c.BookingStatus)
	}

	ApplyNoShowPolicy(c)
	if c.NoShowCount != 3 || c.BookingStatus != string(BookingBlocked) {
		t.Errorf("after policy: count=%d status=%s", c.NoShowCount, c.BookingStatus)
	}
}
