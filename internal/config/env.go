package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Env struct {
	Port    string
	BaseURL string

	DatabaseType     string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDb       string
	PostgresSslMode  string
	SqlitePath       string

	JwtSecret string

	UploadDir       string
	MaxUploadSizeMb int64

	ValkeyHost     string
	ValkeyPort     string
	ValkeyUsername string
	ValkeyPassword string
	ValkeyIsSsl    bool

	LogLevel string
	LogFile  string
}

var (
	once sync.Once
	env  *Env
)

func GetEnv() *Env {
	once.Do(func() {
		// .env is optional, real deployments pass plain env vars
		_ = godotenv.Load()

		env = &Env{
			Port:    getEnvOrDefault("PORT", "4560"),
			BaseURL: getEnvOrDefault("BASE_URL", "http://localhost:4560"),

			DatabaseType:     getEnvOrDefault("DATABASE_TYPE", "sqlite"),
			PostgresHost:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			PostgresPort:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			PostgresUser:     getEnvOrDefault("POSTGRES_USER", "novusfiles"),
			PostgresPassword: getEnvOrDefault("POSTGRES_PASSWORD", "novusfiles"),
			PostgresDb:       getEnvOrDefault("POSTGRES_DB", "novusfiles"),
			PostgresSslMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
			SqlitePath:       getEnvOrDefault("SQLITE_PATH", "novusfiles.db"),

			// The fallback keeps local development and tests working,
			// production deployments must set their own secret
			JwtSecret: getEnvOrDefault("JWT_SECRET", "novusfiles-insecure-dev-secret"),

			UploadDir:       getEnvOrDefault("UPLOAD_DIR", "./uploads"),
			MaxUploadSizeMb: getEnvInt64OrDefault("MAX_UPLOAD_SIZE_MB", 1024),

			ValkeyHost:     getEnvOrDefault("VALKEY_HOST", ""),
			ValkeyPort:     getEnvOrDefault("VALKEY_PORT", "6379"),
			ValkeyUsername: getEnvOrDefault("VALKEY_USERNAME", ""),
			ValkeyPassword: getEnvOrDefault("VALKEY_PASSWORD", ""),
			ValkeyIsSsl:    getEnvOrDefault("VALKEY_IS_SSL", "false") == "true",

			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
			LogFile:  getEnvOrDefault("LOG_FILE", ""),
		}
	})

	return env
}

func (e *Env) MaxUploadSizeBytes() int64 {
	return e.MaxUploadSizeMb * 1024 * 1024
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return parsed
}
