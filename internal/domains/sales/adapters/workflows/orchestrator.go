package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	saleworkflows "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/temporal/workflows/sales"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalSaleWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineSaleWorkflows)(nil)
)

// TemporalSaleWorkflows starts sale workflows on a Temporal cluster.
type TemporalSaleWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSaleWorkflows wires a Temporal client into the orchestrator.
func NewTemporalSaleWorkflows(c client.Client) *TemporalSaleWorkflows {
	return &TemporalSaleWorkflows{client: c, taskQueue: saleworkflows.SaleCreationTaskQueue}
}

// CreateSale starts the Temporal workflow that persists the sale header and
// its line items.
func (o *TemporalSaleWorkflows) CreateSale(ctx context.Context, items []types.LineItemInput) (*ports.CreateSaleResult, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal sale workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("sale-creation-%s", traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		saleworkflows.SaleCreationWorkflow,
		saleworkflows.SaleCreationWorkflowInput{Items: items, TraceID: traceComponent},
	)
	if err != nil {
		return nil, err
	}
	var result ports.CreateSaleResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, fromWorkflowError(err)
	}
	return &result, nil
}

// fromWorkflowError restores the typed API error serialized into an
// application error's type field, so validation and lookup failures keep
// their status mapping after a round trip through Temporal.
func fromWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		switch code := apierr.Code(appErr.Type()); code {
		case apierr.CodeBadRequest, apierr.CodeNotFound, apierr.CodeUnprocessableEntity:
			return apierr.New(code, appErr.Message())
		}
	}
	return err
}

// InlineSaleWorkflows executes the service directly without Temporal, useful
// for tests or dev fallbacks.
type InlineSaleWorkflows struct {
	service ports.Service
}

// NewInlineSaleWorkflows wraps the sales service for synchronous execution.
func NewInlineSaleWorkflows(service ports.Service) *InlineSaleWorkflows {
	return &InlineSaleWorkflows{service: service}
}

// CreateSale delegates to the sales service without durable orchestration.
func (o *InlineSaleWorkflows) CreateSale(ctx context.Context, items []types.LineItemInput) (*ports.CreateSaleResult, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline sale workflows not configured")
	}
	return o.service.Create(ctx, items)
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
