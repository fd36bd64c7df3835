package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/jchantrell/wadload/internal/paths"
)

type Config struct {
	WadDir    string   `mapstructure:"wad_dir"`
	Files     []string `mapstructure:"files"`
	DevMode   string   `mapstructure:"dev_mode"`
	Database  string   `mapstructure:"database"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
}

// Load initializes and loads configuration from file. Values are not
// validated until Validate, so command line overrides can be applied first.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("wad_dir", paths.WorkingDir())
	v.SetDefault("files", []string{})
	v.SetDefault("dev_mode", "")
	v.SetDefault("database", "wadload.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if err := v.BindEnv("wad_dir", "DOOMWADDIR"); err != nil {
		return nil, fmt.Errorf("binding DOOMWADDIR: %w", err)
	}

	// Config file handling
	if cfgFile == "" {
		cfgFile = findConfigFile()
	}
	// Read config file (optional)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// findConfigFile returns ~/.doomrc, else ./.doomrc, else "" when neither exists
func findConfigFile() string {
	for _, candidate := range []string{paths.ConfigFile(), paths.ConfigFileName} {
		if paths.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// Validate checks values that may have been overridden after Load
func (c *Config) Validate() error {
	if err := validateFiles(c.Files); err != nil {
		return fmt.Errorf("invalid file configuration: %w", err)
	}

	if err := validateDevMode(c.DevMode); err != nil {
		return fmt.Errorf("invalid dev mode configuration: %w", err)
	}

	if err := validateLogging(c.LogLevel, c.LogFormat); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	return nil
}
