package mapper

import (
	catalogdomain "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/domain"
)

// Product is the transport-layer shape of a catalog product.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductMutation is the request body for create/update. The pointer lets the
// workflow see an absent name as empty.
type ProductMutation struct {
	Name *string `json:"name"`
}

// Name returns the mutation's name or the empty string when absent.
func (m ProductMutation) ProductName() string {
	if m.Name == nil {
		return ""
	}
	return *m.Name
}

// FromDomain converts a domain product to the transport representation.
func FromDomain(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{ID: product.ID, Name: product.Name}
}

// FromDomainList converts a product slice to transport shapes.
func FromDomainList(products []*catalogdomain.Product) []Product {
	list := make([]Product, 0, len(products))
	for _, product := range products {
		list = append(list, FromDomain(product))
	}
	return list
}
