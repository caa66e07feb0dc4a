package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected
// outside development.
var knownWeakSecrets = []string{
	"unsecure",
	"change-me",
	"secret",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"INKPRESS_DB_PATH" envDefault:"./data/badger"`
	ListenAddr string `env:"INKPRESS_LISTEN_ADDR" envDefault:":8080"`
	BaseURL    string `env:"INKPRESS_BASE_URL" envDefault:"http://localhost:8080"`
	Env        string `env:"INKPRESS_ENV" envDefault:"development"`
	LogLevel   string `env:"INKPRESS_LOG_LEVEL" envDefault:"info"`

	// Admin capability
	AdminEmail        string        `env:"INKPRESS_ADMIN_EMAIL,required"`
	AdminPasswordHash string        `env:"INKPRESS_ADMIN_PASSWORD_HASH,required"` // bcrypt hash
	JWTSecret         string        `env:"INKPRESS_JWT_SECRET,required"`
	TokenTTL          time.Duration `env:"INKPRESS_TOKEN_TTL" envDefault:"24h"`

	// Content generation upstream
	AIAPIKey  string        `env:"INKPRESS_AI_API_KEY"`
	AIBaseURL string        `env:"INKPRESS_AI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	AIModel   string        `env:"INKPRESS_AI_MODEL" envDefault:"gpt-4o-mini"`
	AITimeout time.Duration `env:"INKPRESS_AI_TIMEOUT" envDefault:"60s"`

	// Thumbnail uploads
	UploadsDir string `env:"INKPRESS_UPLOADS_DIR" envDefault:"./uploads"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// MinJWTSecretLength is the minimum required length for the signing secret.
const MinJWTSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validateSecret(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validateSecret() error {
	if c.IsDevelopment() {
		return nil
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("INKPRESS_JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	for _, weak := range knownWeakSecrets {
		if c.JWTSecret == weak {
			return fmt.Errorf("INKPRESS_JWT_SECRET is a known placeholder value")
		}
	}
	return nil
}
