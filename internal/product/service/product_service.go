package service

import (
	"context"

	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/authcore-id/auth-backend/internal/product/domain"
	"github.com/authcore-id/auth-backend/internal/product/dto"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type ProductService struct {
	repo  domain.ProductRepository
	clock clockwork.Clock
}

func NewProductService(repo domain.ProductRepository, clock clockwork.Clock) *ProductService {
	return &ProductService{repo: repo, clock: clock}
}

func (s *ProductService) List(ctx context.Context, query string, page, limit int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, query, (page-1)*limit, limit)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, autherror.ErrNotFound
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, input dto.ProductInput) (*domain.Product, error) {
	now := s.clock.Now()

	p := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input dto.ProductUpdateInput) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	p.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrNotFound
	}
	return nil
}
