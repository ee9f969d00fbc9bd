package application

import (
	"context"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
)

// Service orchestrates the catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product in the catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// GetByID loads one product by identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// Create validates the name and inserts a new product; storage assigns the id.
func (s *Service) Create(ctx context.Context, name string) (*domain.Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, name)
}

// Update renames an existing product after checking it exists.
func (s *Service) Update(ctx context.Context, id int64, name string) (*domain.Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, mapError(err)
	}
	if err := s.repo.Update(ctx, id, name); err != nil {
		return nil, mapError(err)
	}
	return &domain.Product{ID: id, Name: name}, nil
}

// Delete removes a product by identifier.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

// Search matches product names by substring, case-insensitively. An empty
// query behaves like List; an empty result set is a lookup failure.
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	if query == "" {
		return s.repo.List(ctx)
	}
	products, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errProductNotFound
	}
	return products, nil
}

var _ ports.Service = (*Service)(nil)
