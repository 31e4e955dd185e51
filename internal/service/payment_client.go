package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentClient delegates payment-intent creation to the external processor.
// This service never speaks the payment protocol itself; it only hands the
// storefront a client-usable payment handle.
type PaymentClient struct {
	baseURL string
	client  *http.Client
}

func NewPaymentClient(baseURL string) *PaymentClient {
	return &PaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateIntent asks the processor for a payment intent over the given amount
// and returns its client secret. Amounts are sent in cents.
func (c *PaymentClient) CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error) {
	if c.baseURL == "" {
		return "", ErrPaymentNotConfigured
	}

	payload, err := json.Marshal(map[string]interface{}{
		"amount":   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": "zar",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment-intents", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
