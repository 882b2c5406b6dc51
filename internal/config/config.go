package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported data store drivers
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Env             string        `mapstructure:"env"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// IsProduction reports whether the server runs with production settings
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// DatabaseConfig selects the data store. The supabase driver talks to
// PostgREST; postgres and sqlite go through gorm with DSN.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig enables the redis idempotency store when URL is set
type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// AuthConfig holds session token settings. When JWTSecret is empty tokens
// are verified against Supabase.
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	SessionCookie string `mapstructure:"session_cookie"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalysisConfig tunes the insight pipeline
type AnalysisConfig struct {
	DefaultPeriodDays int                 `mapstructure:"default_period_days"`
	FetchLimit        int                 `mapstructure:"fetch_limit"`
	ThemeKeywords     map[string][]string `mapstructure:"theme_keywords"`
}

// CORSConfig lists the origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig sets the per-IP request allowance per window for the
// general API and for the auth endpoints
type RateLimitConfig struct {
	General int           `mapstructure:"general"`
	Auth    int           `mapstructure:"auth"`
	Window  time.Duration `mapstructure:"window"`
}

// Load reads configuration from a .env file, environment variables and
// config files
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("DAYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables used by hosting platforms
	v.BindEnv("server.port", "DAYBOOK_SERVER_PORT", "PORT")
	v.BindEnv("supabase.url", "DAYBOOK_SUPABASE_URL", "SUPABASE_URL")
	v.BindEnv("supabase.service_key", "DAYBOOK_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")
	v.BindEnv("database.dsn", "DAYBOOK_DATABASE_DSN", "DATABASE_URL")
	v.BindEnv("redis.url", "DAYBOOK_REDIS_URL", "REDIS_URL")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", DriverSupabase)
	// Keys without a default are invisible to Unmarshal under AutomaticEnv
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_cookie", "daybook_session")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("analysis.default_period_days", 30)
	v.SetDefault("analysis.fetch_limit", 1000)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("rate_limit.general", 300)
	v.SetDefault("rate_limit.auth", 10)
	v.SetDefault("rate_limit.window", time.Minute)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSupabase:
		if c.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.Supabase.ServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
		}
	case DriverPostgres, DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
		// Without Supabase there is nobody else to verify tokens
		if c.Auth.JWTSecret == "" && c.Supabase.URL == "" {
			return fmt.Errorf("auth.jwt_secret is required when Supabase is not configured")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if c.Analysis.FetchLimit <= 0 {
		return fmt.Errorf("analysis.fetch_limit must be positive")
	}
	if c.Analysis.DefaultPeriodDays <= 0 {
		return fmt.Errorf("analysis.default_period_days must be positive")
	}
	if c.RateLimit.General <= 0 || c.RateLimit.Auth <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit values must be positive")
	}
	return nil
}
