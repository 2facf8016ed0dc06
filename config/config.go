package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	AppName         string
	AppEnv          string
	LogLevel        string
	CORSOrigins     string
	MQTTURL         string
	ShutdownTimeout time.Duration
}

// Load đọc cấu hình từ biến môi trường, có giá trị mặc định
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		AppName:         getEnv("APP_NAME", "go-tasks"),
		AppEnv:          getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     getEnv("CORS_ALLOW_ORIGINS", "*"),
		MQTTURL:         strings.TrimSpace(os.Getenv("MQTT_URL")),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
