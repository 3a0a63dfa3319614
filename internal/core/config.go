package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jo-hoe/gogallery/internal/backend/database"
)

const (
	DefaultPort            = 3000
	DefaultMaxUploadBytes  = 10 << 20
	DefaultTimestampLayout = time.DateTime
	DefaultLogLevel        = "info"
)

type Database struct {
	Type             string `yaml:"type"`
	ConnectionString string `yaml:"connectionString"`
}

type ServiceConfig struct {
	Port     int      `yaml:"port"`
	Database Database `yaml:"database"`
	// MaxUploadBytes bounds the request body of an upload. Zero disables the limit.
	MaxUploadBytes  int64  `yaml:"maxUploadBytes"`
	TimestampLayout string `yaml:"timestampLayout"`
	LogLevel        string `yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *ServiceConfig {
	return &ServiceConfig{
		Port: DefaultPort,
		Database: Database{
			Type: database.TypeMemory,
		},
		MaxUploadBytes:  DefaultMaxUploadBytes,
		TimestampLayout: DefaultTimestampLayout,
		LogLevel:        DefaultLogLevel,
	}
}

// LoadConfig loads configuration from the specified YAML file.
// Keys missing from the file keep their default values.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Parse YAML on top of the defaults
	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return config, nil
}

// LoadConfigOrDefault behaves like LoadConfig but falls back to DefaultConfig
// when the file does not exist.
func LoadConfigOrDefault(configPath string) (*ServiceConfig, error) {
	config, err := LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", configPath)
		return DefaultConfig(), nil
	}
	return config, err
}

func (config *ServiceConfig) validate() error {
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d out of range", config.Port)
	}
	if config.MaxUploadBytes < 0 {
		return fmt.Errorf("maxUploadBytes must not be negative, got %d", config.MaxUploadBytes)
	}
	switch config.Database.Type {
	case "", database.TypeMemory, database.TypeSQLite:
	default:
		return fmt.Errorf("unsupported database type: %s", config.Database.Type)
	}
	if strings.TrimSpace(config.TimestampLayout) == "" {
		config.TimestampLayout = DefaultTimestampLayout
	}
	if _, err := parseLogLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (config *ServiceConfig) SlogLevel() slog.Level {
	level, err := parseLogLevel(config.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(value string) (slog.Level, error) {
	if value == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid logLevel %q: %w", value, err)
	}
	return level, nil
}
