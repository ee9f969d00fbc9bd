// Package types holds the transport-agnostic input shapes of the sales use
// cases. Pointer fields distinguish an absent value from a present zero, so a
// payload carrying "quantity": 0 validates as out of range, never as missing.
package types

// LineItemInput is one line-item entry from a create or update payload.
type LineItemInput struct {
	ProductID *int64
	Quantity  *int32
}
