package util

import "github.com/caarlos0/env/v11"

// Config holds runtime settings. Flags in cmd/ may override the
// environment-derived values.
type Config struct {
	DSN     string `env:"DATABASE_URL"`
	Theme   string `env:"STORMWATCH_THEME" envDefault:"catppuccin"`
	CertDir string `env:"STORMWATCH_CERT_DIR"`
	Debug   bool   `env:"STORMWATCH_DEBUG"`
}

// FromEnv parses Config out of the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
