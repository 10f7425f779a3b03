package postgres

import (
	"context"
	"errors"
	"fmt"

	authpg "github.com/authcore-id/auth-backend/internal/auth/repository/postgres"
	"github.com/authcore-id/auth-backend/internal/product/domain"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db authpg.DB
}

func NewProductRepository(db authpg.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, price, stock, created_at, updated_at`

func (r *ProductRepository) List(ctx context.Context, query string, offset, limit int) ([]domain.Product, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE $1 = '' OR name ILIKE '%%' || $1 || '%%'
		ORDER BY created_at ASC OFFSET $2 LIMIT $3
	`, productColumns)

	rows, err := r.db.Query(ctx, sql, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	sql := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 LIMIT 1`, productColumns)

	var p domain.Product
	err := r.db.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CreatedAt, p.UpdatedAt)

	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, updated_at = $6
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Price, p.Stock, p.UpdatedAt)

	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}
