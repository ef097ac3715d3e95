package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezelectronics/server/internal/core/domain"
	"github.com/ezelectronics/server/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if _, exists := r.products[p.Model]; exists {
		return domain.ErrProductExists
	}
	clone := *p
	r.products[p.Model] = &clone
	return nil
}

func (r *stubProductRepo) GetAll(_ context.Context, category *domain.Category) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0)
	for _, p := range r.products {
		if category != nil && p.Category != *category {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) GetByModel(_ context.Context, model string) (*domain.Product, error) {
	p, ok := r.products[model]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) UpdateQuantity(_ context.Context, model string, quantity int) error {
	p, ok := r.products[model]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, model string) error {
	if _, ok := r.products[model]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, model)
	return nil
}

func newTestProductService(repo *stubProductRepo) *ProductService {
	return NewProductService(repo, zerolog.Nop())
}

func TestProductService_Register_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo)

	err := svc.RegisterProducts(context.Background(), ports.RegisterProductsInput{
		Model:        "iPhone 13",
		Category:     "Smartphone",
		Quantity:     5,
		SellingPrice: 999.99,
	})
	if err != nil {
		t.Fatalf("RegisterProducts returned error: %v", err)
	}

	p := repo.products["iPhone 13"]
	if p == nil {
		t.Fatalf("product not stored")
	}
	if p.ArrivalDate != time.Now().Format("2006-01-02") {
		t.Fatalf("expected arrival date to default to today, got %q", p.ArrivalDate)
	}
}

func TestProductService_Register_Invalid(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo)

	err := svc.RegisterProducts(context.Background(), ports.RegisterProductsInput{
		Model: "x", Category: "Bicycle", Quantity: 1, SellingPrice: 1,
	})
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	future := "2099-01-01"
	err = svc.RegisterProducts(context.Background(), ports.RegisterProductsInput{
		Model: "x", Category: "Laptop", Quantity: 1, SellingPrice: 1, ArrivalDate: &future,
	})
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestProductService_Register_Duplicate(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo)

	in := ports.RegisterProductsInput{Model: "ThinkPad", Category: "Laptop", Quantity: 3, SellingPrice: 1200}
	_ = svc.RegisterProducts(context.Background(), in)
	if err := svc.RegisterProducts(context.Background(), in); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductService_Sell(t *testing.T) {
	repo := newStubProductRepo()
	repo.products["ThinkPad"] = &domain.Product{Model: "ThinkPad", Category: domain.CategoryLaptop, Quantity: 3}
	svc := newTestProductService(repo)

	remaining, err := svc.SellProduct(context.Background(), "ThinkPad", 2)
	if err != nil {
		t.Fatalf("SellProduct returned error: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 remaining, got %d", remaining)
	}

	if _, err := svc.SellProduct(context.Background(), "ThinkPad", 2); !errors.Is(err, domain.ErrEmptyProduct) {
		t.Fatalf("expected ErrEmptyProduct, got %v", err)
	}
	if _, err := svc.SellProduct(context.Background(), "ghost", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_GetProducts_CategoryFilter(t *testing.T) {
	repo := newStubProductRepo()
	repo.products["ThinkPad"] = &domain.Product{Model: "ThinkPad", Category: domain.CategoryLaptop, Quantity: 3}
	repo.products["iPhone"] = &domain.Product{Model: "iPhone", Category: domain.CategorySmartphone, Quantity: 2}
	svc := newTestProductService(repo)

	laptop := "Laptop"
	products, err := svc.GetProducts(context.Background(), &laptop)
	if err != nil {
		t.Fatalf("GetProducts returned error: %v", err)
	}
	if len(products) != 1 || products[0].Model != "ThinkPad" {
		t.Fatalf("unexpected result: %+v", products)
	}

	bad := "Bicycle"
	if _, err := svc.GetProducts(context.Background(), &bad); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}
