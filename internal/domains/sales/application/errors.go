package application

import (
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

var (
	errSaleNotFound    = apierr.NotFound("Sale not found")
	errProductNotFound = apierr.NotFound("Product not found")
)

// validateLineItems enforces the rule order across the whole payload: a
// missing productId anywhere wins over a missing quantity, which wins over an
// out-of-range quantity. Quantity zero is present, just invalid.
func validateLineItems(items []types.LineItemInput) ([]domain.LineItem, error) {
	for _, item := range items {
		if item.ProductID == nil {
			return nil, apierr.BadRequest(`"productId" is required`)
		}
	}
	for _, item := range items {
		if item.Quantity == nil {
			return nil, apierr.BadRequest(`"quantity" is required`)
		}
	}
	for _, item := range items {
		if *item.Quantity <= 0 {
			return nil, apierr.UnprocessableEntity(`"quantity" must be greater than or equal to 1`)
		}
	}
	lineItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, domain.LineItem{ProductID: *item.ProductID, Quantity: *item.Quantity})
	}
	return lineItems, nil
}
