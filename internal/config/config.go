// internal/config/config.go
package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port             int    `envconfig:"PORT" default:"8080"`
	DBHost           string `envconfig:"DB_HOST" default:"localhost"`
	DBPort           uint   `envconfig:"DB_PORT" default:"5432"`
	DBName           string `envconfig:"DB_NAME" default:"agency"`
	DBUsername       string `envconfig:"DB_USERNAME" default:"postgres"`
	DBPassword       string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBSSLModeDisable bool   `envconfig:"DB_SSL_MODE_DISABLE" default:"false"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Quote defaults; every computation still receives its own settings.
	DefaultCommissionPercent float64 `envconfig:"DEFAULT_COMMISSION_PERCENT" default:"15"`
	DefaultASFPercent        float64 `envconfig:"DEFAULT_ASF_PERCENT" default:"5"`
	DefaultASFEnabled        bool    `envconfig:"DEFAULT_ASF_ENABLED" default:"true"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
