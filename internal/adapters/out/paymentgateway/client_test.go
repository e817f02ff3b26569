package paymentgateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/adapters/out/paymentgateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_EKwxwAgItmmXdp","entity":"order","amount":50000,"currency":"INR","status":"created"}`))
	}))
	defer server.Close()

	client := paymentgateway.NewClient(server.URL+"/", "rzp_test_key", "secret", server.Client())

	created, err := client.CreateOrder(context.Background(), 50000, "INR", "ORD202501011200001000")

	require.NoError(t, err)
	assert.Equal(t, "order_EKwxwAgItmmXdp", created.ID)
	assert.Equal(t, int64(50000), created.Amount)
	assert.Equal(t, "INR", created.Currency)
	assert.InDelta(t, 50000, received["amount"], 0)
	assert.Equal(t, "ORD202501011200001000", received["receipt"])
	assert.InDelta(t, 1, received["payment_capture"], 0)
	assert.Equal(t, "rzp_test_key", client.KeyID())
}

func TestCreateOrderRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00"}}`))
	}))
	defer server.Close()

	client := paymentgateway.NewClient(server.URL, "key", "secret", server.Client())

	_, err := client.CreateOrder(context.Background(), 10, "INR", "r")

	require.ErrorIs(t, err, paymentgateway.ErrGatewayRejected)
	assert.ErrorContains(t, err, "BAD_REQUEST_ERROR")
}

func TestCreateOrderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := paymentgateway.NewClient(server.URL, "key", "secret", nil).CreateOrder(context.Background(), 100, "INR", "r")

	require.ErrorIs(t, err, paymentgateway.ErrGatewayRejected)
	assert.ErrorContains(t, err, "502")
}
