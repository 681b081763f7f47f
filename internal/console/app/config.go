package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the console service.
type Config struct {
	Port         int    `env:"PORT" envDefault:"8080"`
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"./console.db"`

	// PublicURL is the address invite links point at.
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`

	// InviteTTL of zero keeps invites until they are redeemed.
	InviteTTL  time.Duration `env:"INVITE_TTL" envDefault:"0s"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// SessionKeyFile holds the Ed25519 signing key. Empty generates a key per
	// process, which invalidates sessions on restart.
	SessionKeyFile string `env:"SESSION_KEY_FILE"`
	PepperFile     string `env:"PEPPER_FILE" envDefault:"./pepper.key"`
	Issuer         string `env:"ISSUER" envDefault:"console"`

	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	GeminiModel  string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	GeminiURL    string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	AssistRate   time.Duration `env:"ASSIST_RATE" envDefault:"2s"`
	AssistBurst  int           `env:"ASSIST_BURST" envDefault:"5"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("DATABASE_FILE is required"))
	}
	if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("PUBLIC_URL must be an absolute URL: %q", c.PublicURL))
	}
	if c.InviteTTL < 0 {
		errs = append(errs, errors.New("INVITE_TTL must not be negative"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.AssistRate <= 0 || c.AssistBurst <= 0 {
		errs = append(errs, errors.New("ASSIST_RATE and ASSIST_BURST must be positive"))
	}

	return errors.Join(errs...)
}
