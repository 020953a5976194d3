package stock

import "errors"

var (
	// Data errors
	ErrStockNotFound = errors.New("stock not found")
)
