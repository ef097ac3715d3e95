package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/ezelectronics/server/internal/core/domain"
)

func testProduct(model string, category domain.Category, quantity int) *domain.Product {
	return &domain.Product{
		Model:        model,
		Category:     category,
		Quantity:     quantity,
		SellingPrice: 100,
		ArrivalDate:  "2024-01-01",
	}
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	if err := repo.Create(context.Background(), testProduct("ThinkPad", domain.CategoryLaptop, 3)); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	p, err := repo.GetByModel(context.Background(), "ThinkPad")
	if err != nil {
		t.Fatalf("GetByModel returned error: %v", err)
	}
	if p.Category != domain.CategoryLaptop || p.Quantity != 3 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Details != nil {
		t.Fatalf("expected nil details, got %v", p.Details)
	}

	if err := repo.Create(context.Background(), testProduct("ThinkPad", domain.CategoryLaptop, 1)); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductRepository_GetAll_Filter(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	_ = repo.Create(context.Background(), testProduct("ThinkPad", domain.CategoryLaptop, 3))
	_ = repo.Create(context.Background(), testProduct("iPhone", domain.CategorySmartphone, 2))

	all, err := repo.GetAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}

	laptop := domain.CategoryLaptop
	laptops, err := repo.GetAll(context.Background(), &laptop)
	if err != nil {
		t.Fatalf("GetAll with filter returned error: %v", err)
	}
	if len(laptops) != 1 || laptops[0].Model != "ThinkPad" {
		t.Fatalf("unexpected filter result: %+v", laptops)
	}
}

func TestProductRepository_UpdateQuantityAndDelete(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	_ = repo.Create(context.Background(), testProduct("ThinkPad", domain.CategoryLaptop, 3))

	if err := repo.UpdateQuantity(context.Background(), "ThinkPad", 1); err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	p, _ := repo.GetByModel(context.Background(), "ThinkPad")
	if p.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", p.Quantity)
	}

	if err := repo.UpdateQuantity(context.Background(), "ghost", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if err := repo.Delete(context.Background(), "ThinkPad"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(context.Background(), "ThinkPad"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for second delete, got %v", err)
	}
}
