package mapper

import (
	"time"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesdomain "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
)

// LineItemPayload is the wire shape of one line item in a create or update
// request. Pointer fields let validation tell an absent field from a zero.
type LineItemPayload struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int32 `json:"quantity"`
}

// LineItem is the wire shape of one accepted line item.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// SaleRow is one row of the denormalized sale listing.
type SaleRow struct {
	SaleID    int64     `json:"saleId"`
	Date      time.Time `json:"date"`
	ProductID int64     `json:"productId"`
	Quantity  int32     `json:"quantity"`
}

// SaleItemRow is one line-item row of a single sale.
type SaleItemRow struct {
	Date      time.Time `json:"date"`
	ProductID int64     `json:"productId"`
	Quantity  int32     `json:"quantity"`
}

// CreatedSale is the creation response, echoing the accepted items.
type CreatedSale struct {
	ID        int64      `json:"id"`
	ItemsSold []LineItem `json:"itemsSold"`
}

// UpdatedSale is the update response, echoing the updated items.
type UpdatedSale struct {
	SaleID       int64      `json:"saleId"`
	ItemsUpdated []LineItem `json:"itemsUpdated"`
}

// ToLineItemInputs converts request payloads into use-case inputs.
func ToLineItemInputs(payloads []LineItemPayload) []types.LineItemInput {
	items := make([]types.LineItemInput, 0, len(payloads))
	for _, payload := range payloads {
		items = append(items, types.LineItemInput{ProductID: payload.ProductID, Quantity: payload.Quantity})
	}
	return items
}

// FromCreateResult converts the creation result to its transport shape.
func FromCreateResult(result *salesports.CreateSaleResult) CreatedSale {
	if result == nil {
		return CreatedSale{}
	}
	return CreatedSale{ID: result.ID, ItemsSold: fromLineItems(result.ItemsSold)}
}

// FromUpdateResult converts the update result to its transport shape.
func FromUpdateResult(result *salesports.UpdateSaleResult) UpdatedSale {
	if result == nil {
		return UpdatedSale{}
	}
	return UpdatedSale{SaleID: result.SaleID, ItemsUpdated: fromLineItems(result.ItemsUpdated)}
}

// FromSaleRows converts listing rows to their transport shape.
func FromSaleRows(rows []salesdomain.SaleRow) []SaleRow {
	list := make([]SaleRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, SaleRow{SaleID: row.SaleID, Date: row.Date, ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return list
}

// FromSaleItemRows converts single-sale rows to their transport shape.
func FromSaleItemRows(rows []salesdomain.SaleItemRow) []SaleItemRow {
	list := make([]SaleItemRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, SaleItemRow{Date: row.Date, ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return list
}

func fromLineItems(items []salesdomain.LineItem) []LineItem {
	list := make([]LineItem, 0, len(items))
	for _, item := range items {
		list = append(list, LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return list
}
