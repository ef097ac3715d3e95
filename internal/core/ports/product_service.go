package ports

import (
	"context"

	"github.com/ezelectronics/server/internal/core/domain"
)

// RegisterProductsInput carries the fields for a product arrival.
type RegisterProductsInput struct {
	Model        string
	Category     string
	Quantity     int
	Details      *string
	SellingPrice float64
	ArrivalDate  *string // defaults to today when nil
}

// ProductService manages the catalog: arrivals, sales, lookups.
type ProductService interface {
	RegisterProducts(ctx context.Context, in RegisterProductsInput) error
	GetProducts(ctx context.Context, category *string) ([]*domain.Product, error)
	GetProductByModel(ctx context.Context, model string) (*domain.Product, error)
	// SellProduct decrements stock by quantity and returns the remaining
	// quantity. Fails with domain.ErrEmptyProduct when stock is insufficient.
	SellProduct(ctx context.Context, model string, quantity int) (int, error)
	DeleteProduct(ctx context.Context, model string) error
}
