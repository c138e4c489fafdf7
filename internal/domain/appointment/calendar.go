package appointment

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/models"
)

// ===============================
// Calendar read model
// ===============================

type CalendarView string

const (
	ViewDay  CalendarView = "day"
	ViewWeek CalendarView = "week"
)

// DayHours is the open window of one weekday.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BranchHours is the shape stored in Branch.WorkingHours, keyed by
// lowercase day name.
type BranchHours map[string]DayHours

// ResolveDayHours returns the branch's window for the named day.
// Missing entries, unreadable JSON and days marked closed all fall
// back to the injected default window.
func ResolveDayHours(raw datatypes.JSON, day string, fallback DayHours) DayHours {
	if len(raw) == 0 {
		return fallback
	}

	var hours BranchHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return fallback
	}

	entry, ok := hours[day]
	if !ok || entry.Closed || entry.Open == "" || entry.Close == "" {
		return fallback
	}
	return entry
}

// CalendarDay pairs a window date with its resolved hours.
type CalendarDay struct {
	Date  string   `json:"date"`
	Day   string   `json:"day"`
	Hours DayHours `json:"hours"`
}

type CalendarStylist struct {
	ID           uuid.UUID                   `json:"id"`
	Name         string                      `json:"name"`
	Color        string                      `json:"color"`
	Available    bool                        `json:"available"`
	Breaks       []models.StylistBreak       `json:"breaks"`
	BlockedSlots []models.StylistBlockedSlot `json:"blocked_slots"`
}

type CalendarAppointment struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Duration      int        `json:"duration"`
	StylistID     *uuid.UUID `json:"stylist_id"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Total         float64    `json:"total"`
}

type ResourceCalendar struct {
	BranchID     uuid.UUID             `json:"branch_id"`
	View         CalendarView          `json:"view"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Days         []CalendarDay         `json:"days"`
	Stylists     []CalendarStylist     `json:"stylists"`
	Appointments []CalendarAppointment `json:"appointments"`
}

// DisplayName resolves what the calendar shows for the booking party:
// customer name, then guest name, then "Guest".
func DisplayName(ap *models.Appointment) string {
	if ap.Customer != nil && ap.Customer.Name != "" {
		return ap.Customer.Name
	}
	if ap.GuestName != "" {
		return ap.GuestName
	}
	return "Guest"
}

// DisplayPhone falls back customer phone -> guest phone.
func DisplayPhone(ap *models.Appointment) string {
	if ap.Customer != nil && ap.Customer.Phone != "" {
		return ap.Customer.Phone
	}
	return ap.GuestPhone
}
