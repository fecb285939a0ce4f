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

	pacttest "github.com/88-AL3Xtx/go-ecommerce-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type buyerPayload struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type orderPayload struct {
	ID        int64     `json:"id"`
	OrderDate time.Time `json:"order_date"`
	BuyerID   int64     `json:"buyer_id"`
}

type orderCreatedPayload struct {
	Message string       `json:"message"`
	Order   orderPayload `json:"order"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestShopPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	requestBuyer := buyerPayload{
		ID:      pacttest.ExistingBuyerID,
		Name:    "Pact Buyer",
		Address: "1 Contract Lane",
		Email:   "pact.buyer@example.com",
	}
	buyerBodyMatcher := matchers.Map{
		"id":      matchers.Like(requestBuyer.ID),
		"name":    matchers.Like(requestBuyer.Name),
		"address": matchers.Like(requestBuyer.Address),
		"email":   matchers.Term(requestBuyer.Email, ".+@.+"),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateBuyersBaseline).
		UponReceiving("a request to register a buyer").
		WithRequest("POST", "/buyers", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"name":    matchers.Like(requestBuyer.Name),
				"address": matchers.Like(requestBuyer.Address),
				"email":   matchers.Term(requestBuyer.Email, ".+@.+"),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(buyerBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateBuyerExists).
		UponReceiving("a request to fetch an existing buyer").
		WithRequest("GET", fmt.Sprintf("/buyers/%d", pacttest.ExistingBuyerID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(buyerBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateBuyerMissing).
		UponReceiving("a request for a missing buyer").
		WithRequest("GET", fmt.Sprintf("/buyers/%d", pacttest.MissingBuyerID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderReady).
		UponReceiving("a request to place an order").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"buyer_id": matchers.Like(pacttest.ExistingBuyerID),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"message": matchers.S("New order placed!"),
				"order": matchers.StructMatcher{
					"id":       matchers.Like(pacttest.ExistingOrderID),
					"buyer_id": matchers.Like(pacttest.ExistingBuyerID),
				},
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newShopClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := client.RegisterBuyer(ctx, requestBuyer)
		if err != nil {
			return fmt.Errorf("register buyer: %w", err)
		}
		if created == nil || created.ID == 0 {
			return fmt.Errorf("expected created buyer ID to be set")
		}

		fetched, err := client.GetBuyer(ctx, pacttest.ExistingBuyerID)
		if err != nil {
			return fmt.Errorf("get buyer: %w", err)
		}
		if fetched == nil || fetched.ID != pacttest.ExistingBuyerID {
			return fmt.Errorf("expected buyer id %d, got %+v", pacttest.ExistingBuyerID, fetched)
		}

		if _, err := client.GetBuyer(ctx, pacttest.MissingBuyerID); err == nil {
			return fmt.Errorf("expected 404 for buyer %d", pacttest.MissingBuyerID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		placed, err := client.PlaceOrder(ctx, pacttest.ExistingBuyerID)
		if err != nil {
			return fmt.Errorf("place order: %w", err)
		}
		if placed == nil || placed.Order.BuyerID != pacttest.ExistingBuyerID {
			return fmt.Errorf("expected order for buyer %d, got %+v", pacttest.ExistingBuyerID, placed)
		}

		return nil
	})
	require.NoError(t, err)
}

type shopClient struct {
	baseURL    string
	httpClient *http.Client
}

func newShopClient(config pactconsumer.MockServerConfig) *shopClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &shopClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *shopClient) RegisterBuyer(ctx context.Context, buyer buyerPayload) (*buyerPayload, error) {
	body, err := json.Marshal(map[string]any{
		"name":    buyer.Name,
		"address": buyer.Address,
		"email":   buyer.Email,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/buyers", bytes.NewReader(body))
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

	var payload buyerPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *shopClient) GetBuyer(ctx context.Context, id int64) (*buyerPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/buyers/%d", c.baseURL, id), nil)
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

	var payload buyerPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *shopClient) PlaceOrder(ctx context.Context, buyerID int64) (*orderCreatedPayload, error) {
	body, err := json.Marshal(map[string]any{"buyer_id": buyerID})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
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

	var payload orderCreatedPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
