package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productmapper "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/ports"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

// ProductAPI wires HTTP transport with the catalog service.
type ProductAPI struct {
	service catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Get /products
// Lists every product in the catalog
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainList(products))
}

// Get /products/search?q=
// Finds products whose name contains the query
func (api *ProductAPI) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products, err := api.service.Search(c.Request.Context(), query)
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainList(products))
}

// Get /products/:id
// Finds a product by ID
func (api *ProductAPI) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomain(product))
}

// Post /products
// Adds a new product to the catalog
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload productmapper.ProductMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.service.Create(c.Request.Context(), payload.ProductName())
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productmapper.FromDomain(product))
}

// Put /products/:id
// Renames an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload productmapper.ProductMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.service.Update(c.Request.Context(), id, payload.ProductName())
	if err != nil {
		apierr.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomain(product))
}

// Delete /products/:id
// Deletes a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
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
