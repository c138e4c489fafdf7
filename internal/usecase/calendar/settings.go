package calendar

import (
	"github.com/glamsuite/salon-scheduler/internal/config"
	domain "github.com/glamsuite/salon-scheduler/internal/domain/appointment"
)

// Settings carries the injected calendar configuration: the default
// working window used when a branch has no entry for a day, and the
// palette cycled to color stylists.
type Settings struct {
	DefaultDayHours domain.DayHours
	StylistPalette  []string
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DefaultDayHours: domain.DayHours{
			Open:  cfg.DefaultOpenTime,
			Close: cfg.DefaultCloseTime,
		},
		StylistPalette: cfg.StylistPalette,
	}
}
