// Package httpapi wires the catalog and sales services to their HTTP routes.
package httpapi

import (
	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the per-context handler sets.
type ApiHandleFunctions struct {
	ProductAPI ProductAPI
	SaleAPI    SaleAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handlers)
}

// NewRouterWithGinEngine registers the API routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handlers ApiHandleFunctions) *gin.Engine {
	products := handlers.ProductAPI
	sales := handlers.SaleAPI

	router.GET("/products", products.ListProducts)
	router.GET("/products/search", products.SearchProducts)
	router.GET("/products/:id", products.GetProductByID)
	router.POST("/products", products.CreateProduct)
	router.PUT("/products/:id", products.UpdateProduct)
	router.DELETE("/products/:id", products.DeleteProduct)

	router.POST("/sales", sales.CreateSale)
	router.GET("/sales", sales.ListSales)
	router.GET("/sales/:id", sales.GetSaleByID)
	router.PUT("/sales/:id", sales.UpdateSaleLineItems)
	router.DELETE("/sales/:id", sales.DeleteSale)

	return router
}
