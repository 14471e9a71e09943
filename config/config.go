package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	RedisAddr   string
	RabbitMQURL string

	OrderExchange     string
	OrderNotifyQueue  string
	RunNotifyConsumer bool
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnvFromFile("DB_PASSWORD_FILE", "DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "hilosaki"),
		JWTSecret:   getEnvFromFile("JWT_SECRET_FILE", "JWT_SECRET", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		OrderExchange:     getEnv("ORDER_EXCHANGE", "orders_exchange"),
		OrderNotifyQueue:  getEnv("ORDER_NOTIFY_QUEUE", "order_notifications"),
		RunNotifyConsumer: getEnv("RUN_NOTIFY_CONSUMER", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}
