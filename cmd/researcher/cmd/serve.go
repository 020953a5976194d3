package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nitish0shr/stock-researcher/internal/api"
	"github.com/nitish0shr/stock-researcher/internal/infra/memory"
	"github.com/nitish0shr/stock-researcher/internal/pkg/logger"
	"github.com/nitish0shr/stock-researcher/internal/server"
	"github.com/nitish0shr/stock-researcher/internal/web/page"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server serving the dashboard, login and stocks pages.

Examples:
  go run ./cmd/researcher serve              # Port from SERVER_PORT (default: 3000)
  go run ./cmd/researcher serve --port=3099  # Override the port`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	serveCmd.Flags().String("port", "", "HTTP port")
	_ = opts.v.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	return serveCmd
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log.Info().
		Str("version", serviceVersion).
		Msg("🚀 Starting Stock Researcher...")

	accessLogger := log.Logger
	if cfg.Logging.FileEnabled {
		accessLogger = logger.NewAccessLogger(cfg.Logging.FilePath, cfg.Logging.RotationSize, cfg.Logging.RetentionDays)
	}

	handler := api.NewRouter(api.Config{
		Version:      serviceVersion,
		Site:         page.SiteConfig{Title: cfg.Site.Title},
		Provider:     memory.NewStockProvider(),
		CORSOrigins:  cfg.Server.CORSOrigins,
		AccessLogger: &accessLogger,
	})

	srv := server.New(server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, handler)

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return err
	}

	log.Info().Msg("👋 Stock Researcher stopped")
	return nil
}
