// Package client talks to the shop API on behalf of the storefront.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/nikolayk812/bakery-web/internal/api"
	"io"
	"net/http"
	"strings"
)

const (
	checkoutPath = "/api/cart/checkout"
	feedbackPath = "/api/feedback"
	productsPath = "/api/products"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL. A nil httpClient means
// http.DefaultClient: no timeout other than the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Checkout(ctx context.Context, req api.CheckoutRequest) (api.CheckoutResponse, error) {
	var resp api.CheckoutResponse

	if err := c.do(ctx, http.MethodPost, checkoutPath, req, &resp); err != nil {
		return api.CheckoutResponse{}, fmt.Errorf("c.do[%s]: %w", checkoutPath, err)
	}

	return resp, nil
}

func (c *Client) Subscribe(ctx context.Context, req api.FeedbackRequest) (api.FeedbackResponse, error) {
	var resp api.FeedbackResponse

	if err := c.do(ctx, http.MethodPost, feedbackPath, req, &resp); err != nil {
		return api.FeedbackResponse{}, fmt.Errorf("c.do[%s]: %w", feedbackPath, err)
	}

	return resp, nil
}

func (c *Client) Products(ctx context.Context) ([]api.Product, error) {
	var resp []api.Product

	if err := c.do(ctx, http.MethodGet, productsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("c.do[%s]: %w", productsPath, err)
	}

	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
