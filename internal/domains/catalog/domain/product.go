package domain

// MinNameLength is the minimum number of characters a product name carries.
// Enforced by the catalog workflow, not by storage.
const MinNameLength = 5

// Product is the aggregate managed by the catalog bounded context. The id is
// assigned by storage on insert and immutable afterwards.
type Product struct {
	ID   int64
	Name string
}
