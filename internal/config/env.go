package config

const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "LOG_LEVEL"

	EnvMaxReschedules   = "MAX_RESCHEDULES"
	EnvDefaultOpenTime  = "DEFAULT_OPEN_TIME"
	EnvDefaultCloseTime = "DEFAULT_CLOSE_TIME"
	EnvStylistPalette   = "STYLIST_PALETTE"

	EnvKafkaBrokers   = "KAFKA_BROKERS"
	EnvKafkaTopic     = "KAFKA_TOPIC"
	EnvEventQueueSize = "EVENT_QUEUE_SIZE"
)
