package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Distance modes for the shipping fee surcharge.
const (
	DistanceModeFixed     = "fixed"
	DistanceModeHaversine = "haversine"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	LogLevel               string
	UnpaidOrderTTL         time.Duration
	ExpirySchedule         string
	DistanceMode           string
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. An empty result disables event
// publishing.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// SlogLevel parses LOG_LEVEL, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT is required")
	}
	switch c.DistanceMode {
	case "", DistanceModeFixed, DistanceModeHaversine:
	default:
		return fmt.Errorf("DISTANCE_MODE must be %q or %q, got %q",
			DistanceModeFixed, DistanceModeHaversine, c.DistanceMode)
	}
	if len(c.KafkaBrokers()) > 0 && c.KafkaOrderChangedTopic == "" {
		return errors.New("KAFKA_ORDER_CHANGED_TOPIC is required when KAFKA_HOST is set")
	}
	return nil
}
