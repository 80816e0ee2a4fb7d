// Package config loads the rolodex configuration: a YAML file with
// environment variable overrides (ROLODEX_*), defaults, and struct
// validation.
//
// Sources in order of precedence:
//  1. Environment variables (ROLODEX_<SECTION>_<KEY>)
//  2. Configuration file (YAML)
//  3. Default values
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/gmarchetti/rolodex/pkg/book"
	"github.com/gmarchetti/rolodex/pkg/book/store"
)

// Config is the full rolodex configuration.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Database selects and locates the addressbook store.
	Database store.Config `mapstructure:"database" yaml:"database"`

	// UI controls presentation of items in CLI output.
	UI UIConfig `mapstructure:"ui" yaml:"ui"`

	// AddEmail configures the add-email mode.
	AddEmail AddEmailConfig `mapstructure:"add_email" yaml:"add_email"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// CustomFormat is the placeholder string used by "list --format
	// custom", e.g. "{nick} ({name}): {mobile}".
	CustomFormat string `mapstructure:"custom_format" yaml:"custom_format"`
}

// AddEmailConfig configures the add-email mode.
type AddEmailConfig struct {
	// Fields lists the item fields filled from the parsed message
	// sender, in order: the display name goes to the first, the
	// address to the second.
	Fields []string `mapstructure:"fields" validate:"omitempty,min=2" yaml:"fields"`
}

var validate = validator.New()

// Load reads configuration from path, or from the default location
// when path is empty. A missing default file is not an error; defaults
// and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ROLODEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Database.ApplyDefaults()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := book.ValidateFormat(cfg.UI.CustomFormat); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	for _, f := range cfg.AddEmail.Fields {
		if !book.IsStandardField(f) {
			return nil, fmt.Errorf("invalid config: unknown add_email field %q", f)
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("database.type", "file")
	v.SetDefault("database.path", "")
	v.SetDefault("ui.custom_format", "{nick} ({name}): {mobile}")
	v.SetDefault("add_email.fields", []string{"name", "email"})
}
