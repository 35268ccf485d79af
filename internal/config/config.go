package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

const (
	SourceModeDatabase = "database"
	SourceModeHTTP     = "http"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Source   SourceConfig
	Report   ReportConfig
	Cache    CacheConfig
	Sentry   SentryConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowOrigins   []string
	RateLimitPerSecond int
	RateLimitBurst     int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedSQL         bool
	LogSQL          bool
}

// SourceConfig selects where transaction snapshots are fetched from
type SourceConfig struct {
	Mode         string
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	MaxFailures  int
	ResetTimeout time.Duration

	// SnapshotMaxAge is how long a snapshot is served before a background refresh. Zero refreshes on every view.
	SnapshotMaxAge time.Duration
}

type ReportConfig struct {
	Currency        string
	ChartScale      int64
	DefaultPageSize int
}

type CacheConfig struct {
	RedisURL  string
	ReportTTL time.Duration
}

type SentryConfig struct {
	DSN         string
	Environment string
}

type SeedConfig struct {
	DemoData     bool
	Transactions int
	Employees    int
	Projects     int
	Users        int
}

// Load reads configuration from the environment, seeded from .env when present
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "dashboard_user"),
			Password:        getEnv("DB_PASSWORD", "dashboard_password"),
			Name:            getEnv("DB_NAME", "construction_dashboard"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedSQL:         getBoolEnv("SEED_DATABASE", false),
			LogSQL:          getBoolEnv("DB_LOG_SQL", false),
		},
		Source: SourceConfig{
			Mode:           strings.ToLower(getEnv("SOURCE_MODE", SourceModeDatabase)),
			BaseURL:        getEnv("SOURCE_BASE_URL", ""),
			Timeout:        getDurationEnv("SOURCE_TIMEOUT", 10*time.Second),
			RetryMax:       getIntEnv("SOURCE_RETRY_MAX", 3),
			RetryWaitMin:   getDurationEnv("SOURCE_RETRY_WAIT_MIN", 200*time.Millisecond),
			RetryWaitMax:   getDurationEnv("SOURCE_RETRY_WAIT_MAX", 2*time.Second),
			MaxFailures:    getIntEnv("SOURCE_MAX_FAILURES", 5),
			ResetTimeout:   getDurationEnv("SOURCE_RESET_TIMEOUT", 30*time.Second),
			SnapshotMaxAge: getDurationEnv("SOURCE_SNAPSHOT_MAX_AGE", 30*time.Second),
		},
		Report: ReportConfig{
			Currency:        strings.ToUpper(getEnv("REPORT_CURRENCY", money.USD)),
			ChartScale:      int64(getIntEnv("REPORT_CHART_SCALE", 1000)),
			DefaultPageSize: getIntEnv("LIST_DEFAULT_PAGE_SIZE", 10),
		},
		Cache: CacheConfig{
			RedisURL:  getEnv("REDIS_URL", ""),
			ReportTTL: getDurationEnv("REPORT_CACHE_TTL", 10*time.Minute),
		},
		Sentry: SentryConfig{
			DSN: getEnv("SENTRY_DSN", ""),
		},
		Seed: SeedConfig{
			DemoData:     getBoolEnv("SEED_DEMO_DATA", false),
			Transactions: getIntEnv("SEED_TRANSACTIONS", 240),
			Employees:    getIntEnv("SEED_EMPLOYEES", 36),
			Projects:     getIntEnv("SEED_PROJECTS", 12),
			Users:        getIntEnv("SEED_USERS", 24),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Sentry.Environment = config.Server.Environment

	return config
}

// Validate rejects settings the reporting core cannot run with
func (c *Config) Validate() error {
	if c.Report.DefaultPageSize < 1 {
		return fmt.Errorf("%w: LIST_DEFAULT_PAGE_SIZE must be at least 1, got %d", ErrInvalidConfig, c.Report.DefaultPageSize)
	}
	if c.Report.ChartScale < 1 {
		return fmt.Errorf("%w: REPORT_CHART_SCALE must be positive, got %d", ErrInvalidConfig, c.Report.ChartScale)
	}
	if money.GetCurrency(c.Report.Currency) == nil {
		return fmt.Errorf("%w: unknown REPORT_CURRENCY %q", ErrInvalidConfig, c.Report.Currency)
	}

	switch c.Source.Mode {
	case SourceModeDatabase:
	case SourceModeHTTP:
		if c.Source.BaseURL == "" {
			return fmt.Errorf("%w: SOURCE_BASE_URL is required when SOURCE_MODE=http", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown SOURCE_MODE %q", ErrInvalidConfig, c.Source.Mode)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
