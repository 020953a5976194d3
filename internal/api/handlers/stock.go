package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nitish0shr/stock-researcher/internal/api/response"
	"github.com/nitish0shr/stock-researcher/internal/domain/stock"
)

// StockHandler serves the stock display records as JSON
type StockHandler struct {
	provider stock.Provider
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(provider stock.Provider) *StockHandler {
	return &StockHandler{
		provider: provider,
	}
}

// List handles GET /api/v1/stocks
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.provider.List(r.Context())
	if err != nil {
		response.InternalError(w, r, err)
		return
	}

	response.SuccessList(w, r, stocks, len(stocks))
}

// GetBySymbol handles GET /api/v1/stocks/{symbol}
func (h *StockHandler) GetBySymbol(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(mux.Vars(r)["symbol"])

	// Validate symbol format
	if !stock.ValidateSymbol(symbol) {
		response.BadRequest(w, r, "Invalid symbol format: "+symbol)
		return
	}

	stocks, err := h.provider.List(r.Context())
	if err != nil {
		response.InternalError(w, r, err)
		return
	}

	s, err := stock.FindBySymbol(stocks, symbol)
	if errors.Is(err, stock.ErrStockNotFound) {
		response.NotFound(w, r, "Stock not found: "+symbol)
		return
	}
	if err != nil {
		response.InternalError(w, r, err)
		return
	}

	response.Success(w, r, s)
}
