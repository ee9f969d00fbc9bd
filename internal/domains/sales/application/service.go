package application

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	catalogdomain "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	catalogports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
)

// Service orchestrates the sales use cases. It reads the product catalog to
// verify referenced products before writing anything.
//
// The multi-statement writes (header then line items, header delete then
// line-item delete, per-item updates) run as independent statements with no
// transaction around them; a partial failure can leave a sale with missing
// items. See the repository docs for the accepted consistency gap.
type Service struct {
	repo    ports.Repository
	catalog ports.ProductCatalog
}

func NewService(repo ports.Repository, catalog ports.ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Create validates the line items, verifies every referenced product exists,
// then inserts the sale header followed by the line items. Nothing is written
// when validation or any product lookup fails.
func (s *Service) Create(ctx context.Context, items []types.LineItemInput) (*ports.CreateSaleResult, error) {
	lineItems, err := validateLineItems(items)
	if err != nil {
		return nil, err
	}

	if err := s.checkProductsExist(ctx, lineItems); err != nil {
		return nil, err
	}

	saleID, err := s.repo.CreateSale(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range lineItems {
		g.Go(func() error {
			return s.repo.AddLineItem(gctx, saleID, item)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.CreateSaleResult{ID: saleID, ItemsSold: lineItems}, nil
}

// List returns the denormalized join of every sale with its line items.
func (s *Service) List(ctx context.Context) ([]domain.SaleRow, error) {
	return s.repo.List(ctx)
}

// GetByID returns the line-item rows of one sale.
func (s *Service) GetByID(ctx context.Context, saleID int64) ([]domain.SaleItemRow, error) {
	rows, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, errSaleNotFound
		}
		return nil, err
	}
	return rows, nil
}

// Delete removes the sale header and its line items. The line-item delete is
// issued regardless of whether the header existed, so no orphan rows survive.
func (s *Service) Delete(ctx context.Context, saleID int64) error {
	headerErr := s.repo.DeleteSale(ctx, saleID)
	if err := s.repo.DeleteLineItems(ctx, saleID); err != nil {
		return err
	}
	if errors.Is(headerErr, ports.ErrNotFound) {
		return errSaleNotFound
	}
	return headerErr
}

// UpdateLineItems replaces the quantities of the given line items on an
// existing sale. The sale existence check runs before any product check.
func (s *Service) UpdateLineItems(ctx context.Context, saleID int64, items []types.LineItemInput) (*ports.UpdateSaleResult, error) {
	lineItems, err := validateLineItems(items)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !saleExists(rows, saleID) {
		return nil, errSaleNotFound
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if !allProductsKnown(products, lineItems) {
		return nil, errProductNotFound
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range lineItems {
		g.Go(func() error {
			return s.repo.UpdateLineItemQuantity(gctx, saleID, item.ProductID, item.Quantity)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ports.UpdateSaleResult{SaleID: saleID, ItemsUpdated: lineItems}, nil
}

// checkProductsExist fans out one lookup per referenced product and fails as
// soon as any lookup fails. A single missing product rejects the whole batch.
func (s *Service) checkProductsExist(ctx context.Context, items []domain.LineItem) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			if _, err := s.catalog.GetByID(gctx, item.ProductID); err != nil {
				if errors.Is(err, catalogports.ErrNotFound) {
					return errProductNotFound
				}
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func saleExists(rows []domain.SaleRow, saleID int64) bool {
	for _, row := range rows {
		if row.SaleID == saleID {
			return true
		}
	}
	return false
}

func allProductsKnown(products []*catalogdomain.Product, items []domain.LineItem) bool {
	known := make(map[int64]struct{}, len(products))
	for _, product := range products {
		known[product.ID] = struct{}{}
	}
	for _, item := range items {
		if _, ok := known[item.ProductID]; !ok {
			return false
		}
	}
	return true
}

var _ ports.Service = (*Service)(nil)
