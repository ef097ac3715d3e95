package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ezelectronics/server/internal/core/domain"
)

// SQLiteProductRepository implements ports.ProductRepository on the shared
// SQLite handle.
type SQLiteProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

func (r *SQLiteProductRepository) Create(ctx context.Context, p *domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO products (model, category, quantity, details, selling_price, arrival_date) VALUES (?, ?, ?, ?, ?, ?)",
		p.Model, string(p.Category), p.Quantity, toNullString(p.Details), p.SellingPrice, p.ArrivalDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *SQLiteProductRepository) GetAll(ctx context.Context, category *domain.Category) ([]*domain.Product, error) {
	query := "SELECT model, category, quantity, details, selling_price, arrival_date FROM products"
	args := []any{}
	if category != nil {
		query += " WHERE category = ?"
		args = append(args, string(*category))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *SQLiteProductRepository) GetByModel(ctx context.Context, model string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT model, category, quantity, details, selling_price, arrival_date FROM products WHERE model = ?",
		model,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (r *SQLiteProductRepository) UpdateQuantity(ctx context.Context, model string, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET quantity = ? WHERE model = ?", quantity, model)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product quantity: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *SQLiteProductRepository) Delete(ctx context.Context, model string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE model = ?", model)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p           domain.Product
		categoryRaw string
		details     sql.NullString
	)
	if err := row.Scan(&p.Model, &categoryRaw, &p.Quantity, &details, &p.SellingPrice, &p.ArrivalDate); err != nil {
		return nil, err
	}
	p.Category = domain.Category(categoryRaw)
	p.Details = fromNullString(details)
	return &p, nil
}
