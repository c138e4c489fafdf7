package appointment

import (
	"testing"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
)

var allStatuses = []Status{
	StatusBooked, StatusConfirmed, StatusCheckedIn, StatusInProgress,
	StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled,
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		verb    Verb
		allowed []Status
		target  Status
	}{
		{VerbCheckIn, []Status{StatusBooked, StatusConfirmed}, StatusCheckedIn},
		{VerbStart, []Status{StatusCheckedIn}, StatusInProgress},
		{VerbComplete, []Status{StatusInProgress}, StatusCompleted},
		{VerbCancel, []Status{StatusBooked, StatusConfirmed, StatusCheckedIn, StatusInProgress}, StatusCancelled},
		{VerbMarkNoShow, []Status{StatusBooked, StatusConfirmed, StatusCheckedIn, StatusInProgress}, StatusNoShow},
		{VerbReschedule, []Status{StatusBooked, StatusConfirmed, StatusCheckedIn}, StatusRescheduled},
	}

	for _, c := range cases {
		t.Run(string(c.verb), func(t *testing.T) {
			allowed := statusSet(c.allowed...)

			for _, from := range allStatuses {
				got, err := Transition(from, c.verb)

				if allowed[from] {
					if err != nil {
						t.Errorf("Transition(%s, %s) rejected: %v", from, c.verb, err)
						continue
					}
					if got != c.target {
						t.Errorf("Transition(%s, %s) = %s, want %s", from, c.verb, got, c.target)
					}
					continue
				}

				if err == nil {
					t.Errorf("Transition(%s, %s) allowed, want rejection", from, c.verb)
					continue
				}
				if !apperr.IsKind(err, apperr.KindIllegalTransition) {
					t.Errorf("Transition(%s, %s) error kind = %v", from, c.verb, err)
				}
			}
		})
	}
}

func TestTransitionUnknownVerb(t *testing.T) {
	if _, err := Transition(StatusBooked, Verb("explode")); err == nil {
		t.Fatal("unknown verb accepted")
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := statusSet(StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled)

	for _, s := range allStatuses {
		if got := IsTerminal(s); got != terminal[s] {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, got, terminal[s])
		}
	}
}

func TestCanMove(t *testing.T) {
	for _, s := range allStatuses {
		err := CanMove(s)

		if IsTerminal(s) {
			if err == nil {
				t.Errorf("CanMove(%s) allowed, want rejection", s)
			} else if !apperr.HasCode(err, apperr.CodeIllegalMove) {
				t.Errorf("CanMove(%s) code = %v, want CAL_002", s, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("CanMove(%s) rejected: %v", s, err)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusBooked {
		t.Fatalf("InitialStatus() = %s", InitialStatus())
	}
}
