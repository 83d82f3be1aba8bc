package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	Auth          AuthConfig          `yaml:"auth"`
	Events        EventsConfig        `yaml:"events"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AuthConfig holds admin token configuration.
type AuthConfig struct {
	JWTSecret      string         `yaml:"jwt_secret"`
	Issuer         string         `yaml:"issuer"`
	TokenTTL       time.Duration  `yaml:"token_ttl"`
	LoginRateLimit float64        `yaml:"login_rate_limit"`
	LoginBurst     int            `yaml:"login_burst"`
	Admins         []AdminAccount `yaml:"admins"`
}

// AdminAccount is one administrator. PasswordHash is a bcrypt hash.
type AdminAccount struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

// EventsConfig holds defaults applied when admins create events.
type EventsConfig struct {
	DefaultMemberPoints int    `yaml:"default_member_points"`
	DefaultCoachPoints  int    `yaml:"default_coach_points"`
	Timezone            string `yaml:"timezone"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	Version        string `yaml:"version"`
}

// LoadConfig loads the configuration from a YAML file, then applies a .env
// file and environment overrides. A missing YAML file falls back to the
// environment alone.
func LoadConfig(filename string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.Auth.Issuer = v
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL value: %w", err)
		}
		cfg.Auth.TokenTTL = d
	}
	// A single admin may be supplied through the environment; it is appended
	// to any accounts in the file.
	if user, hash := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD_HASH"); user != "" && hash != "" {
		role := os.Getenv("ADMIN_ROLE")
		if role == "" {
			role = "admin"
		}
		cfg.Auth.Admins = append(cfg.Auth.Admins, AdminAccount{Username: user, PasswordHash: hash, Role: role})
	}
	if v := os.Getenv("EVENT_TIMEZONE"); v != "" {
		cfg.Events.Timezone = v
	}
	if v := os.Getenv("DEFAULT_MEMBER_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_MEMBER_POINTS value: %w", err)
		}
		cfg.Events.DefaultMemberPoints = n
	}
	if v := os.Getenv("DEFAULT_COACH_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_COACH_POINTS value: %w", err)
		}
		cfg.Events.DefaultCoachPoints = n
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true"
	}
	if v := os.Getenv("APP_VERSION"); v != "" {
		cfg.Observability.Version = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "cirqit-scoreboard"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}
	if cfg.Auth.LoginRateLimit == 0 {
		cfg.Auth.LoginRateLimit = 1
	}
	if cfg.Auth.LoginBurst == 0 {
		cfg.Auth.LoginBurst = 5
	}
	if cfg.Events.DefaultMemberPoints == 0 {
		cfg.Events.DefaultMemberPoints = 1
	}
	if cfg.Events.DefaultCoachPoints == 0 {
		cfg.Events.DefaultCoachPoints = 2
	}
	if cfg.Events.Timezone == "" {
		cfg.Events.Timezone = "Asia/Manila"
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "production"
	}
	if cfg.Observability.Version == "" {
		cfg.Observability.Version = "dev"
	}
}

// Validate reports the first missing or malformed required setting.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return errors.New("postgres dsn is required (DATABASE_URL)")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("jwt secret must be at least 32 characters (JWT_SECRET)")
	}
	for _, a := range c.Auth.Admins {
		if a.Role != "admin" && a.Role != "editor" {
			return fmt.Errorf("admin %q has unknown role %q", a.Username, a.Role)
		}
	}
	if _, err := time.LoadLocation(c.Events.Timezone); err != nil {
		return fmt.Errorf("invalid events timezone %q: %w", c.Events.Timezone, err)
	}
	return nil
}

// ToObsConfig maps the app config onto the observability bootstrap config.
func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		ServiceName:    "cirqit-scoreboard",
		Environment:    appCfg.Observability.Environment,
		Version:        appCfg.Observability.Version,
		LogLevel:       appCfg.Observability.LogLevel,
		MetricsEnabled: appCfg.Observability.MetricsEnabled,
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
