package component

import (
	"html/template"

	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
	"github.com/nitish0shr/stock-researcher/internal/web/style"
)

// StockCard renders one stock display record
type StockCard struct {
	Stock stock.Stock
}

// NewStockCard creates a card for s
func NewStockCard(s stock.Stock) StockCard {
	return StockCard{Stock: s}
}

var stockCardTmpl = template.Must(template.New("stockcard").Parse(
	`<div class="{{.Class}}" data-key="{{.Symbol}}"><h3>{{.Symbol}}: {{.Name}}</h3><div>Price: ${{.Price}}</div></div>`))

// Render renders the card. The price is printed in its default string form.
func (c StockCard) Render() (template.HTML, error) {
	return execute(stockCardTmpl, struct {
		Class  string
		Symbol string
		Name   string
		Price  string
	}{
		Class:  style.CardClass,
		Symbol: c.Stock.Symbol,
		Name:   c.Stock.Name,
		Price:  c.Stock.DisplayPrice(),
	})
}
