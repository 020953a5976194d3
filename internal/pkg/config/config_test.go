package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.False(t, cfg.Logging.FileEnabled)
	assert.Equal(t, "Stock Researcher", cfg.Site.Title)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8099")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("SITE_TITLE", "Equity Desk")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8099", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Equity Desk", cfg.Site.Title)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOGGING_FORMAT=json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOGGING_FORMAT") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestFromViper_FlagOverride(t *testing.T) {
	v := viper.New()
	v.Set("server.port", "9000")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{
				Port:            "3000",
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				IdleTimeout:     time.Second,
				ShutdownTimeout: time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty port", func(c *Config) { c.Server.Port = " " }, "port cannot be empty"},
		{"zero timeout", func(c *Config) { c.Server.IdleTimeout = 0 }, "idle_timeout must be positive"},
		{"first invalid timeout wins", func(c *Config) {
			c.Server.ShutdownTimeout = 0
			c.Server.WriteTimeout = -time.Second
			c.Server.IdleTimeout = 0
		}, "write_timeout must be positive"},
		{"file logging without path", func(c *Config) { c.Logging.FileEnabled = true }, "file path cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := Config{Server: ServerConfig{Port: ":8080"}}
	assert.Equal(t, ":8080", cfg.Addr())
}
