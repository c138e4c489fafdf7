package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	LogLevel    string

	// Scheduling policy knobs injected into the core instead of
	// compile-time constants.
	MaxReschedules   int
	DefaultOpenTime  string
	DefaultCloseTime string
	StylistPalette   []string

	// Post-commit event emission; empty brokers disables kafka.
	KafkaBrokers   []string
	KafkaTopic     string
	EventQueueSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv(EnvDatabaseURL, DefaultDatabaseURL),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),

		MaxReschedules:   getEnvInt(EnvMaxReschedules, DefaultMaxReschedules),
		DefaultOpenTime:  getEnv(EnvDefaultOpenTime, DefaultDefaultOpenTime),
		DefaultCloseTime: getEnv(EnvDefaultCloseTime, DefaultDefaultCloseTime),
		StylistPalette:   getEnvList(EnvStylistPalette, DefaultStylistPalette),

		KafkaBrokers:   getEnvList(EnvKafkaBrokers, nil),
		KafkaTopic:     getEnv(EnvKafkaTopic, DefaultKafkaTopic),
		EventQueueSize: getEnvInt(EnvEventQueueSize, DefaultEventQueueSize),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Validate collects every problem before reporting, so a broken
// environment is fixed in one round trip.
func (c *Config) Validate() error {
	var problems []string

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL must not be empty")
	}
	if c.MaxReschedules < 1 {
		problems = append(problems, fmt.Sprintf("MAX_RESCHEDULES must be at least 1, got %d", c.MaxReschedules))
	}
	if !clockRegex.MatchString(c.DefaultOpenTime) {
		problems = append(problems, fmt.Sprintf("DEFAULT_OPEN_TIME must be HH:MM (00:00-23:59), got %q", c.DefaultOpenTime))
	}
	if !clockRegex.MatchString(c.DefaultCloseTime) {
		problems = append(problems, fmt.Sprintf("DEFAULT_CLOSE_TIME must be HH:MM (00:00-23:59), got %q", c.DefaultCloseTime))
	}
	if len(c.StylistPalette) == 0 {
		problems = append(problems, "STYLIST_PALETTE must list at least one color")
	}
	if c.EventQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("EVENT_QUEUE_SIZE must be at least 1, got %d", c.EventQueueSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
