package sales

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/temporal/sequences"
)

const (
	// SaleCreationWorkflowName is the public identifier for registering the workflow.
	SaleCreationWorkflowName = "sales.workflows.Creation"
	// SaleCreationTaskQueue is the queue consumed by the worker processing sale workflows.
	SaleCreationTaskQueue = "SALE_CREATION"
)

// SaleCreationWorkflowInput captures the payload required to record a sale.
type SaleCreationWorkflowInput struct {
	Items   []types.LineItemInput
	TraceID string
}

// SaleCreationWorkflow orchestrates the activities needed to persist a sale
// and its line items.
func SaleCreationWorkflow(ctx workflow.Context, input SaleCreationWorkflowInput) (*salesports.CreateSaleResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("SaleCreationWorkflow started", withTraceID(input.TraceID, "items", len(input.Items))...)
	result, err := sequences.RunSalePersistenceSequence(ctx, input.Items)
	if err != nil {
		logger.Error("SaleCreationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("SaleCreationWorkflow completed", withTraceID(input.TraceID, "saleId", result.ID)...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
