// Package paymentgateway creates payment orders through the gateway's REST API.
package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/ports"
)

// ErrGatewayRejected is returned for non-2xx gateway responses.
var ErrGatewayRejected = ports.ErrGatewayRejected

const defaultTimeout = 10 * time.Second

// Client implements ports.PaymentGateway with basic-auth JSON calls to POST /v1/orders.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

func NewClient(baseURL, keyID, keySecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		keyID:     keyID,
		keySecret: keySecret,
		http:      httpClient,
	}
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder asks the gateway for an auto-captured order of amount minor units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (ports.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return ports.GatewayOrder{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return ports.GatewayOrder{}, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.GatewayOrder{}, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return ports.GatewayOrder{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gatewayErr errorResponse
		if json.Unmarshal(raw, &gatewayErr) == nil && gatewayErr.Error.Description != "" {
			return ports.GatewayOrder{}, fmt.Errorf("%w: %d %s: %s",
				ErrGatewayRejected, resp.StatusCode, gatewayErr.Error.Code, gatewayErr.Error.Description)
		}
		return ports.GatewayOrder{}, fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	}

	var created createOrderResponse
	if err = json.Unmarshal(raw, &created); err != nil {
		return ports.GatewayOrder{}, fmt.Errorf("decode payment gateway response: %w", err)
	}
	if created.ID == "" {
		return ports.GatewayOrder{}, fmt.Errorf("%w: response without order id", ErrGatewayRejected)
	}

	return ports.GatewayOrder{ID: created.ID, Amount: created.Amount, Currency: created.Currency}, nil
}

// KeyID is the public key the client-side checkout widget needs.
func (c *Client) KeyID() string {
	return c.keyID
}
