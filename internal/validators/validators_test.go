package validators

import (
	"strings"
	"testing"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
)

type sampleInput struct {
	Date string `validate:"required,caldate"`
	Time string `validate:"required,hhmm"`
	View string `validate:"omitempty,oneof=day week"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	in := sampleInput{Date: "2026-02-10", Time: "09:30", View: "week"}
	if err := Struct(in); err != nil {
		t.Fatalf("Struct: %v", err)
	}
}

func TestStructRejectsBadClockValues(t *testing.T) {
	cases := []string{"9:00", "24:00", "12:60", "noon", ""}
	for _, clock := range cases {
		t.Run(clock, func(t *testing.T) {
			err := Struct(sampleInput{Date: "2026-02-10", Time: clock})
			if err == nil {
				t.Fatalf("accepted %q", clock)
			}
			if !apperr.IsKind(err, apperr.KindInvalidInput) {
				t.Errorf("kind = %v", err)
			}
		})
	}
}

func TestStructReportsEveryFailure(t *testing.T) {
	err := Struct(sampleInput{Date: "02/10/2026", Time: "25:99", View: "month"})
	if err == nil {
		t.Fatal("accepted invalid input")
	}

	msg := apperr.As(err).Message
	for _, want := range []string{"Date", "Time", "View"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %s: %q", want, msg)
		}
	}
}
