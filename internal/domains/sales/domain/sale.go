package domain

import "time"

// Sale is the header record for one sale transaction. Storage assigns both
// the id and the date at insert time.
type Sale struct {
	ID   int64
	Date time.Time
}

// LineItem is one (product, quantity) pair belonging to a sale. Within a
// sale, (SaleID, ProductID) is the natural key, so ProductID identifies the
// item here.
type LineItem struct {
	ProductID int64
	Quantity  int32
}

// SaleRow is one row of the denormalized sale header join: one row per line
// item across every sale.
type SaleRow struct {
	SaleID    int64
	Date      time.Time
	ProductID int64
	Quantity  int32
}

// SaleItemRow is one line-item row scoped to a single known sale.
type SaleItemRow struct {
	Date      time.Time
	ProductID int64
	Quantity  int32
}
