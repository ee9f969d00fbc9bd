package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory sale persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	dates  map[int64]time.Time
	items  map[int64][]domain.LineItem
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		dates: map[int64]time.Time{},
		items: map[int64][]domain.LineItem{},
		now:   time.Now,
	}
}

func (r *Repository) CreateSale(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.dates[r.nextID] = r.now()
	return r.nextID, nil
}

func (r *Repository) AddLineItem(_ context.Context, saleID int64, item domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[saleID] = append(r.items[saleID], item)
	return nil
}

func (r *Repository) List(_ context.Context) ([]domain.SaleRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var rows []domain.SaleRow
	for saleID, items := range r.items {
		date, ok := r.dates[saleID]
		if !ok {
			// orphan line items never join a header row
			continue
		}
		for _, item := range items {
			rows = append(rows, domain.SaleRow{
				SaleID:    saleID,
				Date:      date,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SaleID != rows[j].SaleID {
			return rows[i].SaleID < rows[j].SaleID
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	return rows, nil
}

func (r *Repository) GetByID(_ context.Context, saleID int64) ([]domain.SaleItemRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	date, ok := r.dates[saleID]
	items := r.items[saleID]
	if !ok || len(items) == 0 {
		return nil, ports.ErrNotFound
	}
	rows := make([]domain.SaleItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, domain.SaleItemRow{Date: date, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	return rows, nil
}

func (r *Repository) DeleteSale(_ context.Context, saleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dates[saleID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.dates, saleID)
	return nil
}

func (r *Repository) DeleteLineItems(_ context.Context, saleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, saleID)
	return nil
}

func (r *Repository) UpdateLineItemQuantity(_ context.Context, saleID, productID int64, quantity int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[saleID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return nil
}
