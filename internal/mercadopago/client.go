// Package mercadopago implementa o cliente HTTP da API do Mercado Pago
// usado pelo checkout PIX e pelo reconciliador de status de pagamento.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mateuslro/creator-hub/internal/models"
)

// Client é o cliente autenticado da API do Mercado Pago.
type Client struct {
	accessToken string
	apiURL      string
	httpClient  *http.Client
}

// NewClient cria um novo cliente com o access token do gateway.
func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		apiURL:      "https://api.mercadopago.com",
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.apiURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// CreatePayment cria um pagamento PIX no gateway. O cabeçalho
// X-Idempotency-Key impede cobranças duplicadas em reenvio.
func (c *Client) CreatePayment(ctx context.Context, reqParams CreatePaymentRequest) (*Payment, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/payments", reqParams)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPayment consulta um pagamento pelo id atribuído pelo gateway.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/payments/%s", paymentID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPaymentNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ErrPaymentNotFound indica que o gateway não conhece o id consultado.
var ErrPaymentNotFound = errors.New("payment not found at gateway")

// NormalizeStatus converte o status bruto do gateway para o status
// normalizado da plataforma (pending/completed/failed).
func NormalizeStatus(gatewayStatus string) string {
	switch gatewayStatus {
	case "approved":
		return models.PaymentStatusCompleted
	case "rejected", "cancelled", "refunded", "charged_back":
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusPending
	}
}
