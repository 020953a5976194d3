package memory

import (
	"context"

	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
)

// demoStocks is the fixed listing shown on the stocks page
var demoStocks = []stock.Stock{
	stock.New("AAPL", "Apple Inc.", 190),
	stock.New("MSFT", "Microsoft Corp.", 340),
	stock.New("NVDA", "NVIDIA Corp.", 520),
}

// StockProvider serves the demo listing from memory
type StockProvider struct {
	stocks []stock.Stock
}

// NewStockProvider creates a provider over the demo listing
func NewStockProvider() *StockProvider {
	return &StockProvider{stocks: demoStocks}
}

// NewStockProviderWith creates a provider over the given records
func NewStockProviderWith(stocks []stock.Stock) *StockProvider {
	return &StockProvider{stocks: stocks}
}

// List returns a copy of the listing so callers cannot mutate it
func (p *StockProvider) List(ctx context.Context) ([]stock.Stock, error) {
	out := make([]stock.Stock, len(p.stocks))
	copy(out, p.stocks)
	return out, nil
}

var _ stock.Provider = (*StockProvider)(nil)
