package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
// Values come from defaults, an optional .env file and the environment, in that order.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Site    SiteConfig    `mapstructure:"site"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Level         string `mapstructure:"level"`  // debug, info, warn, error
	Format        string `mapstructure:"format"` // json, pretty
	FileEnabled   bool   `mapstructure:"file_enabled"`
	FilePath      string `mapstructure:"file_path"`
	RotationSize  int    `mapstructure:"rotation_size"` // MB
	RetentionDays int    `mapstructure:"retention_days"`
}

type SiteConfig struct {
	Title string `mapstructure:"title"`
}

var keys = []string{
	"server.port",
	"server.read_timeout",
	"server.write_timeout",
	"server.idle_timeout",
	"server.shutdown_timeout",
	"server.cors_origins",
	"logging.level",
	"logging.format",
	"logging.file_enabled",
	"logging.file_path",
	"logging.rotation_size",
	"logging.retention_days",
	"site.title",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "pretty")
	v.SetDefault("logging.file_enabled", false)
	v.SetDefault("logging.file_path", "logs")
	v.SetDefault("logging.rotation_size", 100)
	v.SetDefault("logging.retention_days", 7)

	v.SetDefault("site.title", "Stock Researcher")
}

// Load loads configuration from the environment after loading envFile.
func Load(envFile string) (*Config, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	return FromViper(viper.New())
}

// LoadEnvFile loads envFile into the process environment without overriding
// variables that are already set. An empty path loads ".env" if present; an
// explicit path must exist.
func LoadEnvFile(envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("No .env file found, relying on environment variables")
		}
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}

// FromViper decodes configuration from v after applying defaults and env bindings.
// Flags bound to v beforehand take precedence.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// server.port -> SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would make the server unusable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	// Checked in declaration order so the first invalid timeout is reported
	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"read_timeout", c.Server.ReadTimeout},
		{"write_timeout", c.Server.WriteTimeout},
		{"idle_timeout", c.Server.IdleTimeout},
		{"shutdown_timeout", c.Server.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("server %s must be positive, got %s", t.name, t.value)
		}
	}

	if c.Logging.FileEnabled && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file path cannot be empty when file logging is enabled")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}
