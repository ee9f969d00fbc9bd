package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	catalogmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/application"
	salesmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/memory"
	salesapp "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/httpapi"
)

func newTestHandlers() httpapi.ApiHandleFunctions {
	productRepo := catalogmemory.NewRepository()
	productService := catalogapp.NewService(productRepo)
	saleService := salesapp.NewService(salesmemory.NewRepository(), productRepo)
	return httpapi.ApiHandleFunctions{
		ProductAPI: httpapi.NewProductAPI(productService),
		SaleAPI:    httpapi.NewSaleAPI(saleService, nil),
	}
}

// The tracing middleware must be installed before the routes are registered;
// gin snapshots each route's handler chain at registration time, so a
// middleware added afterwards silently never runs.
func TestNewHTTPEngine_TracesRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	engine := newHTTPEngine("store-manager-test", newTestHandlers())

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, spans.Ended())
}
