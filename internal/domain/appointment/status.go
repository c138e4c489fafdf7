package appointment

import "github.com/glamsuite/salon-scheduler/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked      Status = "booked"
	StatusConfirmed   Status = "confirmed"
	StatusCheckedIn   Status = "checked_in"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

// InactiveStatuses are excluded from conflict checks and calendar views.
var InactiveStatuses = []string{
	string(StatusCancelled),
	string(StatusNoShow),
	string(StatusRescheduled),
}

// ===============================
// Transition table
// ===============================

// Verb is a lifecycle operation, spelled the way rejection messages
// name it ("Cannot <verb> appointment in current status").
type Verb string

const (
	VerbCheckIn    Verb = "check in"
	VerbStart      Verb = "start"
	VerbComplete   Verb = "complete"
	VerbCancel     Verb = "cancel"
	VerbReschedule Verb = "reschedule"
	VerbMarkNoShow Verb = "mark no-show"
)

type transition struct {
	from   map[Status]bool
	target Status
}

// Every legality rule lives here; operations never re-derive it inline.
var transitions = map[Verb]transition{
	VerbCheckIn: {
		from:   statusSet(StatusBooked, StatusConfirmed),
		target: StatusCheckedIn,
	},
	VerbStart: {
		from:   statusSet(StatusCheckedIn),
		target: StatusInProgress,
	},
	VerbComplete: {
		from:   statusSet(StatusInProgress),
		target: StatusCompleted,
	},
	// Cancel is legal from any non-terminal status.
	VerbCancel: {
		from:   statusSet(StatusBooked, StatusConfirmed, StatusCheckedIn, StatusInProgress),
		target: StatusCancelled,
	},
	VerbMarkNoShow: {
		from:   statusSet(StatusBooked, StatusConfirmed, StatusCheckedIn, StatusInProgress),
		target: StatusNoShow,
	},
	VerbReschedule: {
		from:   statusSet(StatusBooked, StatusConfirmed, StatusCheckedIn),
		target: StatusRescheduled,
	},
}

func statusSet(statuses ...Status) map[Status]bool {
	set := make(map[Status]bool, len(statuses))
	for _, s := range statuses {
		set[s] = true
	}
	return set
}

// Transition resolves the status an appointment enters when verb is
// applied from current, or rejects with an error naming the verb.
func Transition(current Status, verb Verb) (Status, error) {
	t, ok := transitions[verb]
	if !ok || !t.from[current] {
		return "", apperr.IllegalTransition(string(verb))
	}
	return t.target, nil
}

// IsTerminal reports whether no lifecycle verb can leave s.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// CanMove gates the calendar move operation, which relocates an
// appointment without changing its status.
func CanMove(current Status) error {
	if IsTerminal(current) {
		return apperr.IllegalMove()
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
