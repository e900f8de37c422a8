package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktrade-backend/internal/domains/checkout/gateway"
)

func TestCreateSession(t *testing.T) {
	var captured *http.Request
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.example/cs_test_1"}`))
	}))
	defer server.Close()

	client, err := NewClient(NewConfig("sk_test_123", server.URL, "usd"))
	require.NoError(t, err)

	session, err := client.CreateSession(context.Background(), gateway.SessionRequest{
		LineItems: []gateway.LineItem{
			{Name: "For Sale", ImageURL: "http://img/1.jpg", Currency: "usd", UnitAmount: 1250, Quantity: 1},
		},
		SuccessURL: "http://shop/success",
		CancelURL:  "http://shop/cancel",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.example/cs_test_1", session.URL)

	assert.Equal(t, "/v1/checkout/sessions", captured.URL.Path)
	assert.Equal(t, "Bearer sk_test_123", captured.Header.Get("Authorization"))
	assert.Equal(t, "application/x-www-form-urlencoded", captured.Header.Get("Content-Type"))

	assert.Equal(t, "payment", form["mode"][0])
	assert.Equal(t, "card", form["payment_method_types[0]"][0])
	assert.Equal(t, "http://shop/success", form["success_url"][0])
	assert.Equal(t, "For Sale", form["line_items[0][price_data][product_data][name]"][0])
	assert.Equal(t, "http://img/1.jpg", form["line_items[0][price_data][product_data][images][0]"][0])
	assert.Equal(t, "1250", form["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "1", form["line_items[0][quantity]"][0])
}

func TestCreateSessionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
	}))
	defer server.Close()

	client, err := NewClient(NewConfig("sk_bad", server.URL, "usd"))
	require.NoError(t, err)

	_, err = client.CreateSession(context.Background(), gateway.SessionRequest{
		LineItems: []gateway.LineItem{{Name: "Book", Currency: "usd", UnitAmount: 100, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key provided")
}

func TestCreateSessionNoLineItems(t *testing.T) {
	client, err := NewClient(NewConfig("sk_test_123", "", ""))
	require.NoError(t, err)

	_, err = client.CreateSession(context.Background(), gateway.SessionRequest{})
	require.Error(t, err)
}

func TestNewClientRequiresSecretKey(t *testing.T) {
	_, err := NewClient(NewConfig("", "", ""))
	require.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig("sk_test_123", "", "")

	assert.Equal(t, "https://api.stripe.com", cfg.APIUrl)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, "https://api.stripe.com/v1/checkout/sessions", cfg.GetSessionsURL())
}
