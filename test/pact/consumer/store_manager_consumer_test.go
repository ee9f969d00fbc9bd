//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/Lucas-Almeida-SD/Trybe-Projeto-25-Store-Manager/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type productPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type lineItemPayload struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

type createdSalePayload struct {
	ID        int64             `json:"id"`
	ItemsSold []lineItemPayload `json:"itemsSold"`
}

type messagePayload struct {
	Message string `json:"message"`
}

type apiError struct {
	status  int
	message string
}

func (e apiError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.message, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestStorefrontContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	productBodyMatcher := matchers.Map{
		"id":   matchers.Like(pacttest.ExistingProductID),
		"name": matchers.Like(pacttest.ExampleProductName),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateProductsBaseline).
		UponReceiving("a request to create a product").
		WithRequest("POST", "/products", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{"name": matchers.Like(pacttest.ExampleProductName)})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(productBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateProductExists).
		UponReceiving("a request to fetch an existing product").
		WithRequest("GET", fmt.Sprintf("/products/%d", pacttest.ExistingProductID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(productBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateProductMissing).
		UponReceiving("a request for a missing product").
		WithRequest("GET", fmt.Sprintf("/products/%d", pacttest.MissingProductID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"message": matchers.S("Product not found")})
		})

	pact.AddInteraction().
		Given(pacttest.StateProductExists).
		UponReceiving("a request to register a sale").
		WithRequest("POST", "/sales", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.ArrayMinLike(matchers.Map{
				"productId": matchers.Like(pacttest.ExistingProductID),
				"quantity":  matchers.Like(2),
			}, 1))
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id": matchers.Like(pacttest.ExistingSaleID),
				"itemsSold": matchers.ArrayMinLike(matchers.Map{
					"productId": matchers.Like(pacttest.ExistingProductID),
					"quantity":  matchers.Like(2),
				}, 1),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newStoreClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := client.CreateProduct(ctx, pacttest.ExampleProductName)
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		if created == nil || created.ID == 0 {
			return fmt.Errorf("expected created product ID to be set")
		}

		fetched, err := client.GetProduct(ctx, pacttest.ExistingProductID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		if fetched == nil || fetched.ID != pacttest.ExistingProductID {
			return fmt.Errorf("expected product id %d, got %+v", pacttest.ExistingProductID, fetched)
		}

		if _, err := client.GetProduct(ctx, pacttest.MissingProductID); err == nil {
			return fmt.Errorf("expected 404 for product %d", pacttest.MissingProductID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		sale, err := client.CreateSale(ctx, []lineItemPayload{{ProductID: pacttest.ExistingProductID, Quantity: 2}})
		if err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		if sale == nil || len(sale.ItemsSold) == 0 {
			return fmt.Errorf("expected items sold to be echoed")
		}

		return nil
	})
	require.NoError(t, err)
}

type storeClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStoreClient(config pactconsumer.MockServerConfig) *storeClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &storeClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *storeClient) CreateProduct(ctx context.Context, name string) (*productPayload, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload productPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *storeClient) GetProduct(ctx context.Context, id int64) (*productPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload productPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *storeClient) CreateSale(ctx context.Context, items []lineItemPayload) (*createdSalePayload, error) {
	body, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sales", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload createdSalePayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decodeAPIError(res *http.Response) error {
	var body messagePayload
	_ = json.NewDecoder(res.Body).Decode(&body)
	return apiError{
		status:  res.StatusCode,
		message: body.Message,
	}
}
