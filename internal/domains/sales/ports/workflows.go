package ports

import (
	"context"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
)

// WorkflowOrchestrator runs the multi-step sale creation, durably when a
// Temporal cluster is available.
type WorkflowOrchestrator interface {
	CreateSale(ctx context.Context, items []types.LineItemInput) (*CreateSaleResult, error)
}
