// Package config loads pcal settings from defaults, an optional .env file,
// and PCAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDir holds the database when PCAL_DB is unset.
const DefaultDir = ".persiancal"

// DefaultDB is the database path used when PCAL_DB is unset.
var DefaultDB = filepath.Join(DefaultDir, "pcal.db")

// Config holds all configuration for the pcal command.
type Config struct {
	DB        string       `mapstructure:"db" validate:"required"`
	Delimiter string       `mapstructure:"delimiter" validate:"required"`
	Layout    string       `mapstructure:"layout" validate:"required"`
	TZ        string       `mapstructure:"tz" validate:"required"`
	Now       *int64       `mapstructure:"now"`
	Logger    LoggerConfig `mapstructure:"log"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load reads .env from the working directory if present, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

// LoadFile is Load with an explicit .env path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("PCAL")
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", DefaultDB)
	v.SetDefault("delimiter", "/")
	v.SetDefault("layout", "yyyy/MM/dd")
	v.SetDefault("tz", "Asia/Tehran")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("db", "PCAL_DB")
	_ = v.BindEnv("delimiter", "PCAL_DELIMITER")
	_ = v.BindEnv("layout", "PCAL_LAYOUT")
	_ = v.BindEnv("tz", "PCAL_TZ")
	_ = v.BindEnv("now", "PCAL_NOW")
	_ = v.BindEnv("log.level", "PCAL_LOG_LEVEL")
	_ = v.BindEnv("log.format", "PCAL_LOG_FORMAT")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: %q fails %s %s", strings.ToLower(fe.Namespace()), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}
	if _, err := time.LoadLocation(cfg.TZ); err != nil {
		return fmt.Errorf("tz: %w", err)
	}
	return nil
}

// Location returns the configured time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FixedNow reports the instant PCAL_NOW pins the clock to, if set. Zero
// pins the clock to the Unix epoch.
func (c *Config) FixedNow() (time.Time, bool) {
	if c.Now == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*c.Now).UTC(), true
}
