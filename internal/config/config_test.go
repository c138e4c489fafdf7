package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MaxReschedules != 3 {
		t.Errorf("MaxReschedules = %d, want 3", cfg.MaxReschedules)
	}
	if cfg.DefaultOpenTime != "09:00" || cfg.DefaultCloseTime != "21:00" {
		t.Errorf("default hours = %s-%s", cfg.DefaultOpenTime, cfg.DefaultCloseTime)
	}
	if len(cfg.StylistPalette) != 8 {
		t.Errorf("palette size = %d, want 8", len(cfg.StylistPalette))
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("brokers should default to empty, got %v", cfg.KafkaBrokers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvMaxReschedules, "5")
	t.Setenv(EnvStylistPalette, "#111111, #222222")
	t.Setenv(EnvKafkaBrokers, "broker1:9092,broker2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MaxReschedules != 5 {
		t.Errorf("MaxReschedules = %d, want 5", cfg.MaxReschedules)
	}
	if len(cfg.StylistPalette) != 2 || cfg.StylistPalette[1] != "#222222" {
		t.Errorf("palette = %v", cfg.StylistPalette)
	}
	if len(cfg.KafkaBrokers) != 2 {
		t.Errorf("brokers = %v", cfg.KafkaBrokers)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		DatabaseURL:      "",
		MaxReschedules:   0,
		DefaultOpenTime:  "9:00",
		DefaultCloseTime: "25:00",
		StylistPalette:   nil,
		EventQueueSize:   0,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate passed on broken config")
	}
	for _, want := range []string{"DATABASE_URL", "MAX_RESCHEDULES", "DEFAULT_OPEN_TIME", "DEFAULT_CLOSE_TIME", "STYLIST_PALETTE", "EVENT_QUEUE_SIZE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %s: %v", want, err)
		}
	}
}

func TestValidateAcceptsBoundaryClockValues(t *testing.T) {
	cfg := &Config{
		DatabaseURL:      "postgres://localhost/salon",
		MaxReschedules:   1,
		DefaultOpenTime:  "00:00",
		DefaultCloseTime: "23:59",
		StylistPalette:   []string{"#000000"},
		EventQueueSize:   1,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
