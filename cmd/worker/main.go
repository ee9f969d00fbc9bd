package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
	salesmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/memory"
	salesobs "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/observability"
	salespostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/persistence/postgres"
	salesapp "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/migrations"
	platformobservability "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/observability"
	platformpostgres "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/postgres"
	saleactivities "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/temporal/activities/sales"
	saleworkflows "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/platform/temporal/workflows/sales"
)

func main() {
	ctx := context.Background()
	const serviceName = "store-manager-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	saleRepo, productRepo, cleanupRepo := buildRepositories(ctx, logger)
	defer cleanupRepo()
	saleService := salesobs.New(
		salesapp.NewService(saleRepo, productRepo),
		salesobs.WithLogger(logger),
		salesobs.WithTracer(instruments.Tracer("internal.sales.application")),
		salesobs.WithMeter(instruments.Meter("internal.sales.application")),
	)
	saleActivities := saleactivities.NewActivities(saleService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, saleworkflows.SaleCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(saleworkflows.SaleCreationWorkflow, workflow.RegisterOptions{Name: saleworkflows.SaleCreationWorkflowName})
	w.RegisterActivityWithOptions(saleActivities.PersistSale, activity.RegisterOptions{Name: saleactivities.PersistSaleActivityName})

	logger.Info("worker listening", slog.String("taskQueue", saleworkflows.SaleCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildRepositories(ctx context.Context, logger *slog.Logger) (salesports.Repository, catalogports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return salesmemory.NewRepository(), catalogmemory.NewRepository(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations (falling back to memory)", slog.String("error", err.Error()))
		cleanup()
		return salesmemory.NewRepository(), catalogmemory.NewRepository(), func() {}
	}
	logger.Info("worker repositories configured with postgres")
	return salespostgres.NewRepository(db), catalogpostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
