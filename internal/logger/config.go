package logger

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string
	ConsoleEnabled bool
	ConsoleFormat  string
	FileEnabled    bool
	FilePath       string
	FileFormat     string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// fileConfig is the YAML shape of the logging section. Pointer fields
// distinguish "absent" from explicit zero values so a sparse file only
// overrides what it actually sets.
type fileConfig struct {
	Logging struct {
		Level          string `yaml:"level"`
		ConsoleEnabled *bool  `yaml:"console_enabled"`
		ConsoleFormat  string `yaml:"console_format"`
		FileEnabled    *bool  `yaml:"file_enabled"`
		FilePath       string `yaml:"file_path"`
		FileFormat     string `yaml:"file_format"`
		FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
		FileMaxBackups int    `yaml:"file_max_backups"`
		FileMaxAgeDays int    `yaml:"file_max_age_days"`
	} `yaml:"logging"`
}

// envOverrides maps the environment variables that win over file settings
type envOverrides struct {
	Level         string `env:"LOG_LEVEL"`
	ConsoleFormat string `env:"LOG_CONSOLE_FORMAT"`
	FileEnabled   *bool  `env:"LOG_FILE_ENABLED"`
	FilePath      string `env:"LOG_FILE_PATH"`
}

// DefaultConfig returns the logging defaults: INFO text to the console,
// no file output.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/deckforge.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig builds the logging configuration: defaults, overlaid by the
// logging section of the YAML file at configPath if one exists, overlaid
// by environment variables. A missing or unreadable file is not an error;
// the defaults simply stand.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			var file fileConfig
			if err := yaml.Unmarshal(data, &file); err != nil {
				return config, fmt.Errorf("parsing logging config %s: %w", configPath, err)
			}
			mergeFileConfig(&config, file)
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return config, fmt.Errorf("parsing logging env overrides: %w", err)
	}
	if overrides.Level != "" {
		config.Level = overrides.Level
	}
	if overrides.ConsoleFormat != "" {
		config.ConsoleFormat = overrides.ConsoleFormat
	}
	if overrides.FileEnabled != nil {
		config.FileEnabled = *overrides.FileEnabled
	}
	if overrides.FilePath != "" {
		config.FilePath = overrides.FilePath
	}

	return config, nil
}

func mergeFileConfig(config *Config, file fileConfig) {
	section := file.Logging

	if section.Level != "" {
		config.Level = section.Level
	}
	if section.ConsoleEnabled != nil {
		config.ConsoleEnabled = *section.ConsoleEnabled
	}
	if section.ConsoleFormat != "" {
		config.ConsoleFormat = section.ConsoleFormat
	}
	if section.FileEnabled != nil {
		config.FileEnabled = *section.FileEnabled
	}
	if section.FilePath != "" {
		config.FilePath = section.FilePath
	}
	if section.FileFormat != "" {
		config.FileFormat = section.FileFormat
	}
	if section.FileMaxSizeMB > 0 {
		config.FileMaxSizeMB = section.FileMaxSizeMB
	}
	if section.FileMaxBackups > 0 {
		config.FileMaxBackups = section.FileMaxBackups
	}
	if section.FileMaxAgeDays > 0 {
		config.FileMaxAgeDays = section.FileMaxAgeDays
	}
}
