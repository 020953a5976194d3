package page

import (
	"context"
	"fmt"
	"html/template"

	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
	"github.com/nitish0shr/stock-researcher/internal/web/component"
)

// Stocks lists every record of the provider as a stock card
type Stocks struct {
	provider stock.Provider
}

// NewStocks creates the stocks page over provider
func NewStocks(provider stock.Provider) *Stocks {
	return &Stocks{provider: provider}
}

func (p *Stocks) Path() string { return PathStocks }
func (p *Stocks) Title() string { return "Stocks – Stock Researcher" }

var stocksTmpl = template.Must(template.New("stocks").Parse(
	`<h2>Stocks List</h2>{{range .}}{{.}}{{end}}`))

func (p *Stocks) Body(ctx context.Context) (template.HTML, error) {
	stocks, err := p.provider.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list stocks: %w", err)
	}

	cards := make([]template.HTML, 0, len(stocks))
	for _, s := range stocks {
		card, err := component.NewStockCard(s).Render()
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}

	return execute(stocksTmpl, cards)
}
