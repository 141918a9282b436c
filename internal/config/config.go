package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Notification Gateway Config
	GatewayURL        string
	GatewaySecret     string
	GatewayTimeout    time.Duration
	GatewayMaxRetries int
	GatewayBaseDelay  time.Duration

	// Dispatch Config
	// Радиус поиска ближайшей станции. Единая политика: 50 км.
	// В исходной системе встречались 50 000 и 50 000 000 метров —
	// второе значение считаем опечаткой.
	DispatchRadiusMeters float64

	// Auth Config
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		GatewayURL:           os.Getenv("NOTIFY_GATEWAY_URL"),
		GatewaySecret:        os.Getenv("NOTIFY_GATEWAY_SECRET"),
		GatewayTimeout:       getEnvAsDuration("NOTIFY_GATEWAY_TIMEOUT", 5*time.Second),
		GatewayMaxRetries:    getEnvAsInt("NOTIFY_GATEWAY_MAX_RETRIES", 3),
		GatewayBaseDelay:     getEnvAsDuration("NOTIFY_GATEWAY_BASE_DELAY", time.Second),
		DispatchRadiusMeters: getEnvAsFloat("DISPATCH_RADIUS_METERS", 50000),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		TokenTTL:             getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.DispatchRadiusMeters <= 0 {
		return nil, fmt.Errorf("DISPATCH_RADIUS_METERS must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
