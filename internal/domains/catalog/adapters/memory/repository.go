package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{products: map[int64]*domain.Product{}}
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) Create(_ context.Context, name string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product := &domain.Product{ID: r.nextID, Name: name}
	r.products[product.ID] = product
	clone := *product
	return &clone, nil
}

func (r *Repository) Update(_ context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return ports.ErrNotFound
	}
	product.Name = name
	return nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) SearchByName(_ context.Context, query string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(query)
	var list []*domain.Product
	for _, product := range r.products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			clone := *product
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
