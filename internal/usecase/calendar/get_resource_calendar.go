package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/logger"
	"github.com/glamsuite/salon-scheduler/internal/models"
	"github.com/glamsuite/salon-scheduler/internal/timegrid"
	"github.com/glamsuite/salon-scheduler/internal/validators"
)

type GetResourceCalendar struct {
	repo     domain.Repository
	settings Settings
	log      *logger.Logger
}

func NewGetResourceCalendar(
	repo domain.Repository,
	settings Settings,
	log *logger.Logger,
) *GetResourceCalendar {
	return &GetResourceCalendar{
		repo:     repo,
		settings: settings,
		log:      log,
	}
}

type GetResourceCalendarInput struct {
	TenantID uuid.UUID `validate:"required"`
	BranchID uuid.UUID `validate:"required"`
	Date     string    `validate:"required,caldate"`
	View     string    `validate:"required,oneof=day week"`
}

// Execute assembles the stylist/time grid for one branch day or ISO
// week. Pure read model: nothing here mutates state or needs a
// transaction.
func (uc *GetResourceCalendar) Execute(
	ctx context.Context,
	in GetResourceCalendarInput,
) (*domain.ResourceCalendar, error) {

	if err := validators.Struct(in); err != nil {
		return nil, apperr.InvalidCalendarInput(apperr.As(err).Message)
	}

	anchor, err := timegrid.ParseDate(in.Date)
	if err != nil {
		return nil, apperr.InvalidCalendarInput(err.Error())
	}

	from, to := resolveWindow(anchor, domain.CalendarView(in.View))

	branch, err := uc.repo.GetBranch(ctx, in.TenantID, in.BranchID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.CalendarNotFound("Branch")
		}
		return nil, err
	}

	cal := &domain.ResourceCalendar{
		BranchID:  in.BranchID,
		View:      domain.CalendarView(in.View),
		StartDate: from.Format(timegrid.DateLayout),
		EndDate:   to.Format(timegrid.DateLayout),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := timegrid.DayName(d)
		cal.Days = append(cal.Days, domain.CalendarDay{
			Date:  d.Format(timegrid.DateLayout),
			Day:   day,
			Hours: domain.ResolveDayHours(branch.WorkingHours, day, uc.settings.DefaultDayHours),
		})
	}

	stylists, err := uc.repo.ListActiveStylists(ctx, in.TenantID, in.BranchID)
	if err != nil {
		return nil, err
	}

	stylistIDs := make([]uuid.UUID, 0, len(stylists))
	for _, s := range stylists {
		stylistIDs = append(stylistIDs, s.ID)
	}

	breaks, err := uc.repo.ListStylistBreaks(ctx, in.TenantID, stylistIDs)
	if err != nil {
		return nil, err
	}
	blocked, err := uc.repo.ListBlockedSlots(
		ctx, in.TenantID, stylistIDs, datatypes.Date(from), datatypes.Date(to))
	if err != nil {
		return nil, err
	}

	for i, s := range stylists {
		entry := domain.CalendarStylist{
			ID:    s.ID,
			Name:  s.Name,
			Color: uc.settings.StylistPalette[i%len(uc.settings.StylistPalette)],
		}
		for _, b := range breaks {
			if b.StylistID == s.ID {
				entry.Breaks = append(entry.Breaks, b)
			}
		}
		// Availability is judged against the requested date only.
		var anchorBlocks []models.StylistBlockedSlot
		for _, slot := range blocked {
			if slot.StylistID != s.ID {
				continue
			}
			entry.BlockedSlots = append(entry.BlockedSlots, slot)
			if sameDay(time.Time(slot.BlockedDate), anchor) {
				anchorBlocks = append(anchorBlocks, slot)
			}
		}
		entry.Available = !domain.HasFullDayBlock(anchorBlocks)
		cal.Stylists = append(cal.Stylists, entry)
	}

	appointments, err := uc.repo.ListWindowAppointments(
		ctx, in.TenantID, in.BranchID, datatypes.Date(from), datatypes.Date(to))
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		ap := &appointments[i]
		cal.Appointments = append(cal.Appointments, domain.CalendarAppointment{
			ID:            ap.ID,
			Date:          time.Time(ap.ScheduledDate).Format(timegrid.DateLayout),
			StartTime:     ap.ScheduledTime,
			EndTime:       ap.EndTime,
			Duration:      ap.TotalDuration,
			StylistID:     ap.StylistID,
			Status:        ap.Status,
			CustomerName:  domain.DisplayName(ap),
			CustomerPhone: domain.DisplayPhone(ap),
			Total:         ap.Total,
		})
	}

	uc.log.Debug("resource calendar assembled",
		"tenant_id", in.TenantID,
		"branch_id", in.BranchID,
		"view", in.View,
		"stylists", len(cal.Stylists),
		"appointments", len(cal.Appointments),
	)
	return cal, nil
}

func resolveWindow(anchor time.Time, view domain.CalendarView) (time.Time, time.Time) {
	if view == domain.ViewWeek {
		monday := timegrid.WeekMonday(anchor)
		return monday, monday.AddDate(0, 0, 6)
	}
	return anchor, anchor
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
