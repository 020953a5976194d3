// Package cmd - Stock Researcher CLI commands
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitish0shr/stock-researcher/internal/pkg/config"
	"github.com/nitish0shr/stock-researcher/internal/pkg/logger"
)

const (
	serviceName    = "stock-researcher"
	serviceVersion = "1.0.0"
)

// options shared by every subcommand
type rootOptions struct {
	envFile string
	verbose bool
	v       *viper.Viper
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "researcher",
		Short: "Stock Researcher - web front end",
		Long: `Stock Researcher - web front end

Usage:
    go run ./cmd/researcher [command]

Commands:
    serve       - HTTP server (Port 3000)
    render      - Print the HTML of one page
`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads configuration and initializes the global logger
func (o *rootOptions) load() (*config.Config, error) {
	if o.verbose {
		o.v.Set("logging.level", "debug")
	}

	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.FromViper(o.v)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		return nil, err
	}

	return cfg, nil
}
