package ports

import (
	"context"

	"github.com/ezelectronics/server/internal/core/domain"
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create stores a new product. Returns domain.ErrProductExists when the
	// model is already registered.
	Create(ctx context.Context, p *domain.Product) error

	// GetAll returns every product, optionally filtered by category.
	GetAll(ctx context.Context, category *domain.Category) ([]*domain.Product, error)

	// GetByModel returns one product, or domain.ErrProductNotFound.
	GetByModel(ctx context.Context, model string) (*domain.Product, error)

	// UpdateQuantity sets the absolute stock quantity of a product.
	UpdateQuantity(ctx context.Context, model string, quantity int) error

	// Delete removes one product, or returns domain.ErrProductNotFound.
	Delete(ctx context.Context, model string) error
}
