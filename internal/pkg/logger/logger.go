package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level          string // debug, info, warn, error
	Format         string // json, pretty
	FileEnabled    bool
	FilePath       string // logs directory path
	RotationSize   int    // MB
	RetentionDays  int
	ServiceName    string
	ServiceVersion string
}

// errorLevelWriter forwards only error and above
type errorLevelWriter struct {
	io.Writer
}

func (w errorLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.ErrorLevel {
		return len(p), nil
	}
	return w.Write(p)
}

// New builds a logger writing to console (and rotating files when enabled)
func New(cfg Config, console io.Writer) (zerolog.Logger, error) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}

	// Console writer
	var writers []io.Writer
	if cfg.Format == "pretty" {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "15:04:05",
		})
	} else {
		writers = append(writers, console)
	}

	// File writers (if enabled)
	if cfg.FileEnabled {
		if err := os.MkdirAll(cfg.FilePath, 0o755); err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to create log directory: %w", err)
		}

		writers = append(writers,
			// Main app log
			rotatingFile(cfg.FilePath, "app.log", cfg.RotationSize, cfg.RetentionDays, 10),
			// Error log (ERROR and above only)
			errorLevelWriter{rotatingFile(cfg.FilePath, "error.log", cfg.RotationSize, cfg.RetentionDays, 10)},
		)
	}

	// Multi writer with service context
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Logger(), nil
}

// Init initializes the global logger
func Init(cfg Config) error {
	// Configure time format
	zerolog.TimeFieldFormat = time.RFC3339

	logger, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	// Set as global logger
	log.Logger = logger

	// Log initialization
	log.Debug().
		Str("level", cfg.Level).
		Str("format", cfg.Format).
		Bool("file_enabled", cfg.FileEnabled).
		Msg("Logger initialized")

	return nil
}

// NewAccessLogger creates a logger for HTTP access logs.
// An empty logPath falls back to the global logger.
func NewAccessLogger(logPath string, rotationSize int, retentionDays int) zerolog.Logger {
	// If file logging disabled, use default logger
	if logPath == "" {
		return log.Logger
	}

	// Ensure directory exists
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		log.Warn().Err(err).Msg("Failed to create access log directory, using default logger")
		return log.Logger
	}

	return zerolog.New(rotatingFile(logPath, "access.log", rotationSize, retentionDays, 10)).
		With().
		Timestamp().
		Str("type", "access").
		Logger()
}

func rotatingFile(dir, name string, sizeMB, ageDays, backups int) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    sizeMB,
		MaxAge:     ageDays,
		MaxBackups: backups,
		Compress:   true,
	}
}
