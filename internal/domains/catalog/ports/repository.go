package ports

import (
	"context"
	"errors"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists catalog products.
type Repository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, name string) (*domain.Product, error)
	// Update renames the product in place. Returns ErrNotFound when no row
	// matched the id.
	Update(ctx context.Context, id int64, name string) error
	// Delete removes the product physically. Returns ErrNotFound when no row
	// was affected.
	Delete(ctx context.Context, id int64) error
	// SearchByName performs a case-insensitive substring match over names.
	SearchByName(ctx context.Context, query string) ([]*domain.Product, error)
}
