package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nitish0shr/stock-researcher/internal/infra/memory"
	"github.com/nitish0shr/stock-researcher/internal/web/page"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <path>",
		Short: "Print the HTML document of a page",
		Long: `Render one page exactly as the server would and print it to stdout.
Exits non-zero when no page exists at the path.

Examples:
  go run ./cmd/researcher render /
  go run ./cmd/researcher render /stocks > stocks.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			renderer := page.NewRenderer(page.SiteConfig{Title: cfg.Site.Title}, memory.NewStockProvider())
			res, err := renderer.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(res.HTML); err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			if res.Status != http.StatusOK {
				return fmt.Errorf("no page at %s", args[0])
			}
			return nil
		},
	}
}
