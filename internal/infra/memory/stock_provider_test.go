package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
	"github.com/nitish0shr/stock-researcher/internal/infra/memory"
)

func TestStockProvider_List(t *testing.T) {
	p := memory.NewStockProvider()

	stocks, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stocks, 3)

	want := []struct {
		symbol, name, price string
	}{
		{"AAPL", "Apple Inc.", "190"},
		{"MSFT", "Microsoft Corp.", "340"},
		{"NVDA", "NVIDIA Corp.", "520"},
	}
	for i, w := range want {
		assert.Equal(t, w.symbol, stocks[i].Symbol)
		assert.Equal(t, w.name, stocks[i].Name)
		assert.Equal(t, w.price, stocks[i].DisplayPrice())
	}
}

func TestStockProvider_ListReturnsCopy(t *testing.T) {
	p := memory.NewStockProvider()

	first, err := p.List(context.Background())
	require.NoError(t, err)
	first[0] = stock.New("XXX", "Mutated", 1)

	second, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAPL", second[0].Symbol)
}

func TestStockProviderWith(t *testing.T) {
	p := memory.NewStockProviderWith(nil)

	stocks, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stocks)
}
