package ports

import (
	"context"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, name string) (*domain.Product, error)
	Update(ctx context.Context, id int64, name string) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]*domain.Product, error)
}
