package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	cfgpkg "github.com/agrofono/checkout/pkg/config"
)

// ErrResourceNotFound is returned when the provider has no record for the
// requested id.
var ErrResourceNotFound = errors.New("mercadopago: resource not found")

// APIError is a non-2xx provider reply other than 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: http %d: %s", e.StatusCode, e.Body)
}

// Client is a stateless wrapper over the MercadoPago REST API. Calls are
// synchronous and retry-free; retry policy belongs to the caller. The
// payment and preapproval products authenticate with separate tokens.
type Client struct {
	baseURL           string
	paymentToken      string
	subscriptionToken string
	http              *http.Client
}

func NewClient(cfg *cfgpkg.Config) *Client {
	return &Client{
		baseURL:           cfg.MercadoPago.BaseURL,
		paymentToken:      cfg.MercadoPago.AccessToken,
		subscriptionToken: cfg.MercadoPago.SubscriptionAccessToken,
		http:              &http.Client{Timeout: 15 * time.Second},
	}
}

// PreferenceRequest describes a one-off checkout to create.
type PreferenceRequest struct {
	ItemID            string
	Title             string
	UnitPrice         float64
	ExternalReference string
	BackURL           string
	NotificationURL   string
}

// Preference is the provider-hosted checkout handle.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PreapprovalRequest describes a recurring subscription to create.
type PreapprovalRequest struct {
	Reason            string
	ExternalReference string
	Amount            float64
	CurrencyID        string
	PayerEmail        string
	BackURL           string
	NotificationURL   string
}

// Preapproval is the provider-side subscription handle.
type Preapproval struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	InitPoint         string `json:"init_point"`
	ExternalReference string `json:"external_reference"`
}

// Payment is the authoritative provider payment record.
type Payment struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// CreatePreference calls POST /checkout/preferences.
func (c *Client) CreatePreference(ctx context.Context, req *PreferenceRequest) (*Preference, error) {
	payload := map[string]any{
		"items": []map[string]any{
			{
				"id":         req.ItemID,
				"title":      req.Title,
				"quantity":   1,
				"unit_price": req.UnitPrice,
			},
		},
		"back_urls": map[string]string{
			"success": req.BackURL,
			"failure": req.BackURL,
		},
		"auto_return":        "approved",
		"notification_url":   req.NotificationURL,
		"external_reference": req.ExternalReference,
	}
	var out Preference
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", c.paymentToken, payload, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("mercadopago: preference created without id")
	}
	return &out, nil
}

// CreatePreapproval calls POST /preapproval. The subscription starts in
// status pending until the payer authorizes it on the init point page.
func (c *Client) CreatePreapproval(ctx context.Context, req *PreapprovalRequest) (*Preapproval, error) {
	payload := map[string]any{
		"reason":             req.Reason,
		"external_reference": req.ExternalReference,
		"auto_recurring": map[string]any{
			"frequency":          1,
			"frequency_type":     "months",
			"transaction_amount": req.Amount,
			"currency_id":        req.CurrencyID,
		},
		"payer_email":      req.PayerEmail,
		"back_url":         req.BackURL,
		"notification_url": req.NotificationURL,
		"status":           "pending",
	}
	var out Preapproval
	if err := c.do(ctx, http.MethodPost, "/preapproval", c.subscriptionToken, payload, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("mercadopago: preapproval created without id")
	}
	return &out, nil
}

// GetPayment calls GET /v1/payments/{id}.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var out Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, c.paymentToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPreapproval calls GET /preapproval/{id}.
func (c *Client) GetPreapproval(ctx context.Context, subscriptionID string) (*Preapproval, error) {
	var out Preapproval
	if err := c.do(ctx, http.MethodGet, "/preapproval/"+subscriptionID, c.subscriptionToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("mercadopago: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mercadopago: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrResourceNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("mercadopago: decode response: %w", err)
	}
	return nil
}
