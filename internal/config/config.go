package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. SHOPLIST_THEME.
const EnvPrefix = "SHOPLIST"

const (
	EnvLogLevel  = "SHOPLIST_LOG_LEVEL"
	EnvLogFile   = "SHOPLIST_LOG_FILE"
	EnvLogFormat = "SHOPLIST_LOG_FORMAT"
	EnvTheme     = "SHOPLIST_THEME"
	EnvIDScheme  = "SHOPLIST_ID_SCHEME"
)

// Config is read from the environment (and an optional .env file).
// Command line flags override it in the cli package.
type Config struct {
	// LogFile is empty by default: the TUI owns the terminal, so logs are
	// dropped unless a file is named.
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile   string `envconfig:"LOG_FILE"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	Theme     string `envconfig:"THEME" default:"classic" validate:"oneof=classic neon mono"`
	IDScheme  string `envconfig:"ID_SCHEME" default:"sequence" validate:"oneof=sequence count"`
}

// Load reads .env files if present, then the process environment.
// Values are not validated here; callers apply overrides first and then call
// Validate.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}
