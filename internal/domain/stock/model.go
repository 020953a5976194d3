package stock

import (
	"github.com/shopspring/decimal"
)

// Stock represents a stock display record
// Immutable value; Symbol identifies it within a single listing
type Stock struct {
	Symbol string          `json:"symbol"` // ticker, also the list key
	Name   string          `json:"name"`   // company name
	Price  decimal.Decimal `json:"price"`  // last known price, shown as-is
}

// New creates a stock display record from an integer price
func New(symbol, name string, price int64) Stock {
	return Stock{
		Symbol: symbol,
		Name:   name,
		Price:  decimal.NewFromInt(price),
	}
}

// DisplayPrice returns the price in its default string form
func (s Stock) DisplayPrice() string {
	return s.Price.String()
}

// FindBySymbol returns the record with the given symbol
func FindBySymbol(stocks []Stock, symbol string) (Stock, error) {
	for _, s := range stocks {
		if s.Symbol == symbol {
			return s, nil
		}
	}
	return Stock{}, ErrStockNotFound
}

// maxSymbolLength bounds ticker symbols
const maxSymbolLength = 10

// ValidateSymbol validates ticker format: upper-case letters, digits, '.' or '-'
func ValidateSymbol(symbol string) bool {
	if symbol == "" || len(symbol) > maxSymbolLength {
		return false
	}
	for _, c := range symbol {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
