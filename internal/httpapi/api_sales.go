package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	salemapper "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/http/mapper"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	salesports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

// SaleAPI wires HTTP transport with the sales service and workflows.
type SaleAPI struct {
	service   salesports.Service
	workflows salesports.WorkflowOrchestrator
}

// NewSaleAPI creates a SaleAPI backed by the provided service.
func NewSaleAPI(service salesports.Service, workflows salesports.WorkflowOrchestrator) SaleAPI {
	return SaleAPI{service: service, workflows: workflows}
}

// Post /sales
// Records a new sale with its line items
func (api *SaleAPI) CreateSale(c *gin.Context) {
	var payload []salemapper.LineItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := api.createSale(c.Request.Context(), salemapper.ToLineItemInputs(payload))
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, salemapper.FromCreateResult(result))
}

func (api *SaleAPI) createSale(ctx context.Context, items []types.LineItemInput) (*salesports.CreateSaleResult, error) {
	if api.workflows != nil {
		return api.workflows.CreateSale(ctx, items)
	}
	return api.service.Create(ctx, items)
}

// Get /sales
// Lists every sale joined with its line items
func (api *SaleAPI) ListSales(c *gin.Context) {
	rows, err := api.service.List(c.Request.Context())
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromSaleRows(rows))
}

// Get /sales/:id
// Finds the line items of one sale
func (api *SaleAPI) GetSaleByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rows, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromSaleItemRows(rows))
}

// Put /sales/:id
// Replaces the quantities of a sale's line items
func (api *SaleAPI) UpdateSaleLineItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload []salemapper.LineItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := api.service.UpdateLineItems(c.Request.Context(), id, salemapper.ToLineItemInputs(payload))
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromUpdateResult(result))
}

// Delete /sales/:id
// Deletes a sale and all of its line items
func (api *SaleAPI) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
