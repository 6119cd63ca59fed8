package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	HTTPPort                    string
	DBHost                      string
	DBPort                      string
	DBUser                      string
	DBPassword                  string
	DBName                      string
	DBSslMode                   string
	RedisURL                    string
	KafkaHost                   string
	KafkaOrderChangedTopic      string
	LogLevel                    string
	DefaultCurrency             string
	PendingOrderTTL             time.Duration
	ExpirePendingOrdersSchedule string
}

// LoadConfig reads .env from the working directory when it exists and then the
// process environment. Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads envFile when it exists, then the process environment,
// and validates the result.
func LoadConfigFrom(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	ttl, err := time.ParseDuration(getEnv("PENDING_ORDER_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("PENDING_ORDER_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("PENDING_ORDER_TTL must be positive, got %s", ttl)
	}

	return Config{
		HTTPPort:                    getEnv("HTTP_PORT", "8080"),
		DBHost:                      getEnv("DB_HOST", "localhost"),
		DBPort:                      getEnv("DB_PORT", "5432"),
		DBUser:                      getEnv("DB_USER", "postgres"),
		DBPassword:                  getEnv("DB_PASSWORD", ""),
		DBName:                      getEnv("DB_NAME", "sales"),
		DBSslMode:                   getEnv("DB_SSLMODE", "disable"),
		RedisURL:                    os.Getenv("REDIS_URL"),
		KafkaHost:                   os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic:      getEnv("KAFKA_ORDER_CHANGED_TOPIC", "sales.order.changed"),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
		DefaultCurrency:             getEnv("DEFAULT_CURRENCY", "USD"),
		PendingOrderTTL:             ttl,
		ExpirePendingOrdersSchedule: getEnv("EXPIRE_PENDING_ORDERS_SCHEDULE", "0 */5 * * * *"),
	}, nil
}

// DSN renders the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
