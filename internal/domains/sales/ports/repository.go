package ports

import (
	"context"
	"errors"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
)

var ErrNotFound = errors.New("sale not found")

// Repository persists sale headers and their line items. Each call is one
// storage round-trip; the multi-statement sequences are coordinated by the
// sales service, not here.
type Repository interface {
	// CreateSale inserts an empty sale header and returns the generated id.
	// Storage assigns the date.
	CreateSale(ctx context.Context) (int64, error)
	// AddLineItem inserts one line item referencing the sale.
	AddLineItem(ctx context.Context, saleID int64, item domain.LineItem) error
	// List returns the header join across every sale, one row per line item.
	List(ctx context.Context) ([]domain.SaleRow, error)
	// GetByID returns the line-item rows of one sale. Returns ErrNotFound
	// when the join produces no rows for the id.
	GetByID(ctx context.Context, saleID int64) ([]domain.SaleItemRow, error)
	// DeleteSale removes the sale header. Returns ErrNotFound when no row
	// was affected.
	DeleteSale(ctx context.Context, saleID int64) error
	// DeleteLineItems removes every line item of the sale. Removing zero
	// rows is not an error.
	DeleteLineItems(ctx context.Context, saleID int64) error
	// UpdateLineItemQuantity sets the quantity at (saleID, productID).
	// Matching zero rows is not an error.
	UpdateLineItemQuantity(ctx context.Context, saleID, productID int64, quantity int32) error
}
