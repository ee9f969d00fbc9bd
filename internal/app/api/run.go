package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	catalogmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/application"
	catalogports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
	salesmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/memory"
	salesobs "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/observability"
	salespostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/persistence/postgres"
	salesworkflows "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/workflows"
	salesapp "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/httpapi"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/migrations"
	platformobservability "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/observability"
	platformpostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/postgres"
)

// Run boots the Store Manager HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "store-manager-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := connectDatabase(ctx, logger)
	defer cleanupDB()

	productRepo := buildProductRepository(db, logger)
	productService := catalogobs.New(
		catalogapp.NewService(productRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	saleRepo := buildSaleRepository(db, logger)
	saleService := salesobs.New(
		salesapp.NewService(saleRepo, productRepo),
		salesobs.WithLogger(logger),
		salesobs.WithTracer(instruments.Tracer("internal.sales.application")),
		salesobs.WithMeter(instruments.Meter("internal.sales.application")),
	)

	var saleWorkflows salesports.WorkflowOrchestrator = salesworkflows.NewInlineSaleWorkflows(saleService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running sale creation inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		saleWorkflows = salesworkflows.NewTemporalSaleWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := httpapi.ApiHandleFunctions{
		ProductAPI: httpapi.NewProductAPI(productService),
		SaleAPI:    httpapi.NewSaleAPI(saleService, saleWorkflows),
	}

	router := newHTTPEngine(serviceName, handlers)
	addr := ":" + cfg.Port
	logger.Info("Store Manager API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Store Manager API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newHTTPEngine builds the gin engine with the tracing middleware installed
// before any route is registered; gin snapshots the handler chain at
// registration time, so middleware added later never runs.
func newHTTPEngine(serviceName string, handlers httpapi.ApiHandleFunctions) *gin.Engine {
	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	return httpapi.NewRouterWithGinEngine(engine, handlers)
}

func connectDatabase(ctx context.Context, logger *slog.Logger) (*gorm.DB, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return nil, cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		cleanup()
		return nil, func() {}
	}
	return db, cleanup
}

func buildProductRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("product repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildSaleRepository(db *gorm.DB, logger *slog.Logger) salesports.Repository {
	if db == nil {
		return salesmemory.NewRepository()
	}
	logger.Info("sale repository configured with postgres")
	return salespostgres.NewRepository(db)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
