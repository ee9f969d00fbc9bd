package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	saleactivities "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/temporal/activities/sales"
)

// RunSalePersistenceSequence executes the activity that persists a sale
// header followed by its line items.
func RunSalePersistenceSequence(ctx workflow.Context, items []types.LineItemInput) (*salesports.CreateSaleResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("sale persistence sequence started", "items", len(items))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var result salesports.CreateSaleResult
	err := workflow.ExecuteActivity(ctx, saleactivities.PersistSaleActivityName, items).Get(ctx, &result)
	if err != nil {
		logger.Error("sale persistence sequence failed", "error", err)
		return nil, err
	}
	logger.Info("sale persistence sequence completed", "saleId", result.ID)
	return &result, nil
}
