package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisHoldDB   int    `mapstructure:"REDIS_HOLD_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Slot hold lifetime in seconds when no explicit expiry is given.
	SlotHoldLifetimeSecs int `mapstructure:"SLOT_HOLD_LIFETIME_SECS"`

	// Booking window: minimum lead time in minutes and maximum months ahead.
	BookingMinLeadMinutes int `mapstructure:"BOOKING_MIN_LEAD_MINUTES"`
	BookingMaxMonths      int `mapstructure:"BOOKING_MAX_MONTHS"`

	// How many days ahead the materialization worker expands recurring
	// schedules into persisted slots.
	MaterializeHorizonDays int `mapstructure:"MATERIALIZE_HORIZON_DAYS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_HOLD_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SLOT_HOLD_LIFETIME_SECS", 600)
	viper.SetDefault("BOOKING_MIN_LEAD_MINUTES", 20)
	viper.SetDefault("BOOKING_MAX_MONTHS", 6)
	viper.SetDefault("MATERIALIZE_HORIZON_DAYS", 14)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// HoldLifetime returns the configured default hold TTL as a duration.
func HoldLifetime() time.Duration {
	return time.Duration(AppConfig.SlotHoldLifetimeSecs) * time.Second
}
