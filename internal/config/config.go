package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	HTTPPort    string
	DatabaseURL string
	ViewerPIN   string
	AdminPIN    string
	SessionTTL  time.Duration
	RateRPS     int
	KafkaBroker string
	KafkaTopic  string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:         get("APP_ENV", "dev"),
		HTTPPort:    get("HTTP_PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"), // empty means in-memory stores
		ViewerPIN:   get("HOME_PIN", "0000"),
		AdminPIN:    get("ADMIN_PIN", "9999"),
		SessionTTL:  getDur("SESSION_TTL", time.Hour),
		RateRPS:     getInt("RATE_RPS", 100),
		KafkaBroker: os.Getenv("KAFKA_BROKER"), // empty disables event publishing
		KafkaTopic:  get("KAFKA_TOPIC", "ledger-entry-events"),
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
