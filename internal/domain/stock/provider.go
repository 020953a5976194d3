package stock

import "context"

// Provider defines the source of stock display records
type Provider interface {
	// List returns the records to display, in display order
	List(ctx context.Context) ([]Stock, error)
}

// ProviderFunc adapts a plain function to Provider
type ProviderFunc func(ctx context.Context) ([]Stock, error)

// List calls f(ctx)
func (f ProviderFunc) List(ctx context.Context) ([]Stock, error) {
	return f(ctx)
}
