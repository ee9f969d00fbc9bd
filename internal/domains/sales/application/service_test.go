package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/catalog/adapters/memory"
	salesmemory "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/adapters/memory"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/domains/sales/application/types"
	"github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/internal/shared/apierr"
)

func lineItem(productID int64, quantity int32) types.LineItemInput {
	return types.LineItemInput{ProductID: &productID, Quantity: &quantity}
}

func newSaleService(t *testing.T, productNames ...string) (*Service, *salesmemory.Repository) {
	t.Helper()
	catalog := catalogmemory.NewRepository()
	for _, name := range productNames {
		_, err := catalog.Create(context.Background(), name)
		require.NoError(t, err)
	}
	repo := salesmemory.NewRepository()
	return NewService(repo, catalog), repo
}

func TestCreateSale_Success(t *testing.T) {
	svc, repo := newSaleService(t, "Martelo de Thor", "Traje de encolhimento")
	ctx := context.Background()

	result, err := svc.Create(ctx, []types.LineItemInput{
		lineItem(1, 2),
		lineItem(2, 5),
	})

	require.NoError(t, err)
	require.Equal(t, int64(1), result.ID)
	require.Len(t, result.ItemsSold, 2)
	require.Equal(t, int64(1), result.ItemsSold[0].ProductID)
	require.Equal(t, int32(2), result.ItemsSold[0].Quantity)

	rows, err := repo.GetByID(ctx, result.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestCreateSale_MissingProductID(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")
	quantity := int32(2)

	_, err := svc.Create(context.Background(), []types.LineItemInput{{Quantity: &quantity}})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeBadRequest, apiErr.Code)
	require.Equal(t, `"productId" is required`, apiErr.Message)
}

func TestCreateSale_MissingQuantity(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")
	productID := int64(1)

	_, err := svc.Create(context.Background(), []types.LineItemInput{{ProductID: &productID}})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeBadRequest, apiErr.Code)
	require.Equal(t, `"quantity" is required`, apiErr.Message)
}

func TestCreateSale_ZeroQuantity(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	_, err := svc.Create(context.Background(), []types.LineItemInput{lineItem(1, 0)})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeUnprocessableEntity, apiErr.Code)
	require.Equal(t, `"quantity" must be greater than or equal to 1`, apiErr.Message)
}

func TestCreateSale_MissingProductIDWinsOverMissingQuantity(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")
	productID := int64(1)
	quantity := int32(2)

	// first item lacks quantity, second lacks productId; the productId rule
	// is checked across the whole payload first
	_, err := svc.Create(context.Background(), []types.LineItemInput{
		{ProductID: &productID},
		{Quantity: &quantity},
	})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, `"productId" is required`, apiErr.Message)
}

func TestCreateSale_MissingQuantityWinsOverZeroQuantity(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor", "Traje de encolhimento")
	productID := int64(2)

	_, err := svc.Create(context.Background(), []types.LineItemInput{
		lineItem(1, 0),
		{ProductID: &productID},
	})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, `"quantity" is required`, apiErr.Message)
}

func TestCreateSale_UnknownProductRejectsWholeBatch(t *testing.T) {
	svc, repo := newSaleService(t, "Martelo de Thor")
	ctx := context.Background()

	_, err := svc.Create(ctx, []types.LineItemInput{
		lineItem(1, 2),
		lineItem(999, 1),
	})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeNotFound, apiErr.Code)
	require.Equal(t, "Product not found", apiErr.Message)

	// nothing may be written when any referenced product is unknown
	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestListSales_JoinsHeadersAndItems(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor", "Traje de encolhimento")
	ctx := context.Background()

	first, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 2)})
	require.NoError(t, err)
	second, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 1), lineItem(2, 3)})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, first.ID, rows[0].SaleID)
	require.Equal(t, second.ID, rows[1].SaleID)
	require.Equal(t, second.ID, rows[2].SaleID)
	require.False(t, rows[0].Date.IsZero())
}

func TestGetSaleByID_Success(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor", "Traje de encolhimento")
	ctx := context.Background()

	created, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 2), lineItem(2, 5)})
	require.NoError(t, err)

	rows, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, int64(1), rows[0].ProductID)
	require.Equal(t, int64(2), rows[1].ProductID)
}

func TestGetSaleByID_NotFound(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	_, err := svc.GetByID(context.Background(), 999)

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeNotFound, apiErr.Code)
	require.Equal(t, "Sale not found", apiErr.Message)
}

func TestDeleteSale_Success(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")
	ctx := context.Background()

	created, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 2)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Sale not found", apiErr.Message)
}

func TestDeleteSale_NotFound(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	err := svc.Delete(context.Background(), 999)

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeNotFound, apiErr.Code)
	require.Equal(t, "Sale not found", apiErr.Message)
}

func TestUpdateSaleLineItems_Success(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor", "Traje de encolhimento")
	ctx := context.Background()

	created, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 2), lineItem(2, 5)})
	require.NoError(t, err)

	result, err := svc.UpdateLineItems(ctx, created.ID, []types.LineItemInput{
		lineItem(1, 10),
		lineItem(2, 50),
	})

	require.NoError(t, err)
	require.Equal(t, created.ID, result.SaleID)
	require.Len(t, result.ItemsUpdated, 2)

	rows, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int32(10), rows[0].Quantity)
	require.Equal(t, int32(50), rows[1].Quantity)
}

func TestUpdateSaleLineItems_SaleNotFound(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	_, err := svc.UpdateLineItems(context.Background(), 999, []types.LineItemInput{lineItem(1, 2)})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Sale not found", apiErr.Message)
}

func TestUpdateSaleLineItems_ProductNotFound(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")
	ctx := context.Background()

	created, err := svc.Create(ctx, []types.LineItemInput{lineItem(1, 2)})
	require.NoError(t, err)

	_, err = svc.UpdateLineItems(ctx, created.ID, []types.LineItemInput{lineItem(999, 2)})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Product not found", apiErr.Message)
}

func TestUpdateSaleLineItems_SaleCheckRunsBeforeProductCheck(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	// both the sale and the product are unknown; the sale lookup decides
	_, err := svc.UpdateLineItems(context.Background(), 999, []types.LineItemInput{lineItem(999, 2)})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Sale not found", apiErr.Message)
}

func TestUpdateSaleLineItems_ValidationRunsFirst(t *testing.T) {
	svc, _ := newSaleService(t, "Martelo de Thor")

	_, err := svc.UpdateLineItems(context.Background(), 999, []types.LineItemInput{lineItem(1, 0)})

	var apiErr apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.CodeUnprocessableEntity, apiErr.Code)
	require.Equal(t, `"quantity" must be greater than or equal to 1`, apiErr.Message)
}
