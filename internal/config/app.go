package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ytget/catalog-dashboard/internal/platform"
)

// Configuration keys, also bound to CATALOG_* environment variables
const (
	ConfigKeySettingsFile = "settings_file"
	ConfigKeyPageSize     = "page_size"
	ConfigKeyTypeTag      = "type_tag"
	ConfigKeyLogLevel     = "log_level"
	ConfigKeyLogFormat    = "log_format"
)

// Configuration defaults
const (
	EnvPrefix        = "CATALOG"
	ConfigFileName   = "catalog"
	DefaultPageSize  = 10
	MaxPageSize      = 200
	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// AppConfig is the startup configuration shared by the desktop app and the CLI
type AppConfig struct {
	// SettingsFile overrides where settings.json lives. Empty means the
	// caller's default location.
	SettingsFile string `mapstructure:"settings_file"`

	// PageSize is the number of products per page
	PageSize int `mapstructure:"page_size" validate:"min=1,max=200"`

	// TypeTag restricts catalog files to names containing it
	TypeTag string `mapstructure:"type_tag"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=auto console json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewViper returns a viper instance with defaults, CATALOG_* environment
// binding, and the config file search path. configFile may be empty.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault(ConfigKeySettingsFile, "")
	v.SetDefault(ConfigKeyPageSize, DefaultPageSize)
	v.SetDefault(ConfigKeyTypeTag, "")
	v.SetDefault(ConfigKeyLogLevel, DefaultLogLevel)
	v.SetDefault(ConfigKeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		return v
	}

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, platform.AppDirName))
	}
	v.AddConfigPath(".")
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	return v
}

// LoadAppConfig reads the optional config file and returns the validated
// configuration. A missing config file is not an error unless it was named
// explicitly.
func LoadAppConfig(v *viper.Viper) (*AppConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ResolveSettingsFile returns the configured settings file or fallback when
// none is set.
func (c *AppConfig) ResolveSettingsFile(fallback string) string {
	if c.SettingsFile != "" {
		return c.SettingsFile
	}
	return fallback
}
