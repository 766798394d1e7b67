// Package product is the HTTP client for the external product service.
// Every failure mode of the lookup collapses to ErrNotFound at this boundary,
// with the actual cause left in the logs for operators.
package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrNotFound is the only error GetProduct returns.
var ErrNotFound = errors.New("product not found")

// Product is the subset of the product payload this service cares about.
// Price is a pointer so a payload without a price can be told apart from a
// free product.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price"`
}

type Client interface {
	GetProduct(ctx context.Context, productID int64) (*Product, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// envelope is the product service response shape: {"data": {...}}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *httpClient) GetProduct(ctx context.Context, productID int64) (*Product, error) {

	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Error("Error building product-service request",
			slog.String("error", err.Error()),
			slog.String("url", url))
		return nil, ErrNotFound
	}

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("Error connecting to product-service",
			slog.String("error", err.Error()),
			slog.String("url", url))
		return nil, ErrNotFound
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.Warn("Unexpected status from product-service",
			slog.Int("status", resp.StatusCode),
			slog.String("url", url))
		return nil, ErrNotFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		slog.Warn("Invalid response body from product-service",
			slog.String("error", err.Error()),
			slog.String("url", url))
		return nil, ErrNotFound
	}

	if isEmptyData(env.Data) {
		slog.Warn("Empty data in response from product-service", slog.String("url", url))
		return nil, ErrNotFound
	}

	var p Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		slog.Warn("Invalid product data from product-service",
			slog.String("error", err.Error()),
			slog.String("url", url))
		return nil, ErrNotFound
	}

	return &p, nil
}

func isEmptyData(data json.RawMessage) bool {

	trimmed := bytes.TrimSpace(data)

	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("{}")) ||
		bytes.Equal(trimmed, []byte("[]")) ||
		bytes.Equal(trimmed, []byte(`""`))
}
