package config

import (
	"os"
	"strconv"
)

// DefaultMaxDailyGuests is the daily guest ceiling applied when
// MAX_DAILY_GUESTS is not set.
const DefaultMaxDailyGuests = 50

type Config struct {
	Port           string
	DatabaseDSN    string
	AllowedOrigins string
	GinMode        string
}

// Load reads environment variables to build a Config. Defaults are used when
// variables are not set.
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8083"),
		DatabaseDSN:    getenv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=restoran port=5432 sslmode=disable"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		GinMode:        os.Getenv("GIN_MODE"),
	}
}

// MaxDailyGuests returns the guest ceiling for a single reservation date.
func MaxDailyGuests() int {
	if v := atoi(os.Getenv("MAX_DAILY_GUESTS")); v > 0 {
		return v
	}
	return DefaultMaxDailyGuests
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
