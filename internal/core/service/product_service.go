package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezelectronics/server/internal/core/domain"
	"github.com/ezelectronics/server/internal/core/ports"
)

// ProductService manages catalog arrivals, sales and lookups.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// RegisterProducts stores a new product arrival. A missing arrival date
// defaults to today; a future one is rejected.
func (s *ProductService) RegisterProducts(ctx context.Context, in ports.RegisterProductsInput) error {
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return err
	}

	arrival := time.Now().Format(dateLayout)
	if in.ArrivalDate != nil {
		arrival, err = ValidDate(*in.ArrivalDate)
		if err != nil {
			return err
		}
	}

	p := &domain.Product{
		Model:        in.Model,
		Category:     category,
		Quantity:     in.Quantity,
		Details:      in.Details,
		SellingPrice: in.SellingPrice,
		ArrivalDate:  arrival,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.logger.Info().Str("model", in.Model).Int("quantity", in.Quantity).Msg("products registered")
	return nil
}

func (s *ProductService) GetProducts(ctx context.Context, category *string) ([]*domain.Product, error) {
	if category == nil {
		return s.repo.GetAll(ctx, nil)
	}
	parsed, err := domain.ParseCategory(*category)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, &parsed)
}

func (s *ProductService) GetProductByModel(ctx context.Context, model string) (*domain.Product, error) {
	return s.repo.GetByModel(ctx, model)
}

// SellProduct decrements stock and returns the remaining quantity.
func (s *ProductService) SellProduct(ctx context.Context, model string, quantity int) (int, error) {
	p, err := s.repo.GetByModel(ctx, model)
	if err != nil {
		return 0, err
	}
	if p.Quantity < quantity {
		return 0, domain.ErrEmptyProduct
	}

	remaining := p.Quantity - quantity
	if err := s.repo.UpdateQuantity(ctx, model, remaining); err != nil {
		return 0, err
	}
	return remaining, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, model string) error {
	return s.repo.Delete(ctx, model)
}
