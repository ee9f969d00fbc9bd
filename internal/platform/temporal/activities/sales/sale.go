package sales

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

// PersistSaleActivityName runs the full sale-creation sequence through the
// sales service.
const PersistSaleActivityName = "sales.activities.PersistSale"

// Activities groups activities that operate on the sales bounded context.
type Activities struct {
	service salesports.Service
}

// NewActivities wires the sales service into the Temporal activities bundle.
func NewActivities(service salesports.Service) *Activities {
	return &Activities{service: service}
}

// PersistSale validates and stores a new sale and returns the echoed result.
func (a *Activities) PersistSale(ctx context.Context, items []types.LineItemInput) (*salesports.CreateSaleResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("sale persist activity not initialized")
		return nil, errors.New("sale persist activity not initialized")
	}
	logger.Info("PersistSale activity started", "items", len(items))
	result, err := a.service.Create(ctx, items)
	if err != nil {
		logger.Error("PersistSale activity failed", "items", len(items), "error", err)
		return nil, asActivityError(err)
	}
	logger.Info("PersistSale activity completed", "saleId", result.ID)
	return result, nil
}

// asActivityError carries a typed API error across the workflow boundary as a
// non-retryable application error whose type field holds the code. Validation
// and lookup failures are deterministic, so retrying them is pointless.
func asActivityError(err error) error {
	var apiErr apierr.Error
	if errors.As(err, &apiErr) {
		return temporal.NewNonRetryableApplicationError(apiErr.Message, string(apiErr.Code), err)
	}
	return err
}
