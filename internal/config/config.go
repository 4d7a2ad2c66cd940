package config

import (
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite DatabaseDriver = "sqlite" // Local file database (default)
	DriverMySQL  DatabaseDriver = "mysql"  // External MySQL server, DATABASE_DSN required
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Log
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   DatabaseDriver
		Path     string // sqlite file path
		DSN      string // mysql DSN, e.g. "user:pass@tcp(127.0.0.1:3306)/bookstore?parseTime=true"
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Auth struct {
		TokenSecret string        // HMAC key for API tokens, generated at startup if empty
		TokenIssuer string        // "iss" claim
		TokenExpiry time.Duration // API token lifetime
		BcryptCost  int
	}
	Log struct {
		Level  string // logrus level name
		Format string // "json" or "text"
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("auth_token_secret", "") // Auto-generated if empty
	v.SetDefault("auth_token_issuer", DefaultTokenIssuer)
	v.SetDefault("auth_token_expiry", "15m")
	v.SetDefault("auth_bcrypt_cost", 12)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			TokenSecret: v.GetString("AUTH_TOKEN_SECRET"),
			TokenIssuer: v.GetString("AUTH_TOKEN_ISSUER"),
			TokenExpiry: v.GetDuration("AUTH_TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
