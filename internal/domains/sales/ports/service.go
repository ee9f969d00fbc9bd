package ports

import (
	"context"

	catalogdomain "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
)

// ProductCatalog is the read-side view of the catalog the sales use cases
// need to verify referenced products. The catalog repository satisfies it;
// this is the one deliberate cross-context dependency.
type ProductCatalog interface {
	GetByID(ctx context.Context, id int64) (*catalogdomain.Product, error)
	List(ctx context.Context) ([]*catalogdomain.Product, error)
}

// CreateSaleResult echoes the accepted line items together with the
// generated sale id.
type CreateSaleResult struct {
	ID        int64
	ItemsSold []domain.LineItem
}

// UpdateSaleResult echoes the updated line items for one sale.
type UpdateSaleResult struct {
	SaleID       int64
	ItemsUpdated []domain.LineItem
}

// Service exposes the sales use cases to adapters.
type Service interface {
	Create(ctx context.Context, items []types.LineItemInput) (*CreateSaleResult, error)
	List(ctx context.Context) ([]domain.SaleRow, error)
	GetByID(ctx context.Context, saleID int64) ([]domain.SaleItemRow, error)
	Delete(ctx context.Context, saleID int64) error
	UpdateLineItems(ctx context.Context, saleID int64, items []types.LineItemInput) (*UpdateSaleResult, error)
}
