package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/youbo0129ueno-star/Memory-Anki/internal/logger"
)

// ServerConfig holds the HTTP bridge settings.
type ServerConfig struct {
	Host               string        `mapstructure:"host" validate:"required"`
	Port               int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout" validate:"min=0"`
	ShutDownTimeout    time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout" validate:"min=0"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins" validate:"required"`
}

// StorageConfig holds the storage gateway settings.
type StorageConfig struct {
	Dir          string `mapstructure:"dir" validate:"required"`
	WatchEnabled bool   `mapstructure:"watch_enabled"`
}

// MiscConfig holds the remaining knobs.
type MiscConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required"`
	GinMode  string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Misc    MiscConfig    `mapstructure:"misc"`
}

// LoadConfig reads configuration from config.yaml (optional), .env and
// environment variables prefixed with MEMORY_ANKI_. Defaults allow running
// with no config file at all.
func LoadConfig() (*Config, error) {
	// .env is a convenience for development; absence is not an error.
	if err := godotenv.Load(); err == nil {
		logger.WithComponent("config").Debug("loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve default data dir: %w", err)
	}

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8765)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.request_timeout", 5*time.Second)
	v.SetDefault("server.cors_allowed_origins", "*")
	v.SetDefault("storage.dir", dataDir)
	v.SetDefault("storage.watch_enabled", true)
	v.SetDefault("misc.log_level", "info")
	v.SetDefault("misc.gin_mode", "release")

	// Environment variables like MEMORY_ANKI_SERVER_PORT override everything.
	v.AutomaticEnv()
	v.SetEnvPrefix("MEMORY_ANKI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.WithComponent("config").Info("no config file found, using defaults and env vars")
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks the configuration using struct tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// defaultDataDir returns the per-user application data directory for the app,
// e.g. ~/.config/memory-anki on Linux or %AppData%\memory-anki on Windows.
func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "memory-anki"), nil
}
