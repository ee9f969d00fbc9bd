package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesdomain "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/domain"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
)

const tracerName = "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/observability/service"

// Service decorates the sales service with tracing, logging, and metrics.
type Service struct {
	inner   salesports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core sales service.
func New(inner salesports.Service, opts ...Option) salesports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Create(ctx context.Context, items []types.LineItemInput) (*salesports.CreateSaleResult, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.Create",
		trace.WithAttributes(attribute.Int("sale.items", len(items))))
	defer span.End()

	s.logInfo(ctx, "creating sale", slog.Int("sale.items", len(items)))
	result, err := s.inner.Create(ctx, items)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create sale", slog.Int("sale.items", len(items)))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "sale created", slog.Int64("sale.id", result.ID), slog.Int("sale.items", len(result.ItemsSold)))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]salesdomain.SaleRow, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list sales")
	}
	span.SetAttributes(attribute.Int("sale.rows", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, saleID int64) ([]salesdomain.SaleItemRow, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.GetByID",
		trace.WithAttributes(attribute.Int64("sale.id", saleID)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, saleID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load sale", slog.Int64("sale.id", saleID))
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, saleID int64) error {
	ctx, span := s.tracer.Start(ctx, "SalesService.Delete",
		trace.WithAttributes(attribute.Int64("sale.id", saleID)))
	defer span.End()

	s.logInfo(ctx, "deleting sale", slog.Int64("sale.id", saleID))
	if err := s.inner.Delete(ctx, saleID); err != nil {
		return s.handleError(ctx, span, err, "failed to delete sale", slog.Int64("sale.id", saleID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "sale deleted", slog.Int64("sale.id", saleID))
	return nil
}

func (s *Service) UpdateLineItems(ctx context.Context, saleID int64, items []types.LineItemInput) (*salesports.UpdateSaleResult, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.UpdateLineItems",
		trace.WithAttributes(attribute.Int64("sale.id", saleID), attribute.Int("sale.items", len(items))))
	defer span.End()

	s.logInfo(ctx, "updating sale line items", slog.Int64("sale.id", saleID), slog.Int("sale.items", len(items)))
	result, err := s.inner.UpdateLineItems(ctx, saleID, items)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update sale line items", slog.Int64("sale.id", saleID))
	}
	s.logInfo(ctx, "sale line items updated", slog.Int64("sale.id", result.SaleID))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	salesCreated metric.Int64Counter
	salesDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	salesCreated, _ := m.Int64Counter("sales.service.sales_created", metric.WithDescription("Number of sales created"))
	salesDeleted, _ := m.Int64Counter("sales.service.sales_deleted", metric.WithDescription("Number of sales deleted"))
	return serviceMetrics{salesCreated: salesCreated, salesDeleted: salesDeleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.salesCreated != nil {
		m.salesCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.salesDeleted != nil {
		m.salesDeleted.Add(ctx, 1)
	}
}

var _ salesports.Service = (*Service)(nil)
