package domain

import (
	"context"
	"time"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductRepository interface {
	// List returns products whose name contains query (case-insensitive),
	// or all products when query is empty.
	List(ctx context.Context, query string, offset, limit int) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) (bool, error)
}
