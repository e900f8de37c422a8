package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"booktrade-backend/internal/domains/checkout/gateway"
)

// =====================================================
// STRIPE CLIENT
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (gateway.CheckoutGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Stripe config: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) CreateSession(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}

	form := c.buildSessionForm(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.GetSessionsURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("stripe error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("stripe returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	return &gateway.Session{ID: session.ID, URL: session.URL}, nil
}

// buildSessionForm encodes the session as the form-style nested keys
// the API expects.
func (c *Client) buildSessionForm(req gateway.SessionRequest) url.Values {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)

	for i, item := range req.LineItems {
		prefix := "line_items[" + strconv.Itoa(i) + "]"
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	return form
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
