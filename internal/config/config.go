package config

import (
	"fmt"
	"os"
)

// Config carries every externally supplied setting. It is built once at
// startup and passed by reference to whatever needs it.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	StripeSecretKey     string
	FirebaseCredentials string
	JWTSecret           string
	RedisURL            string

	// PaymentTx runs the parcel update and payment insert inside a single
	// transaction instead of the default best-effort sequence.
	PaymentTx bool
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              getEnv("DB_PORT", "5432"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		FirebaseCredentials: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		RedisURL:            os.Getenv("REDIS_URL"),
		PaymentTx:           os.Getenv("PAYMENT_TX") == "true",
	}
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
