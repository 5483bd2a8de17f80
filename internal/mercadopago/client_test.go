package mercadopago

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mateuslro/creator-hub/internal/models"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name          string
		gatewayStatus string
		expected      string
	}{
		{"aprovado vira completed", "approved", models.PaymentStatusCompleted},
		{"rejeitado vira failed", "rejected", models.PaymentStatusFailed},
		{"cancelado vira failed", "cancelled", models.PaymentStatusFailed},
		{"estornado vira failed", "refunded", models.PaymentStatusFailed},
		{"chargeback vira failed", "charged_back", models.PaymentStatusFailed},
		{"pendente permanece pending", "pending", models.PaymentStatusPending},
		{"em processamento vira pending", "in_process", models.PaymentStatusPending},
		{"status desconhecido vira pending", "alguma_coisa_nova", models.PaymentStatusPending},
		{"status vazio vira pending", "", models.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.gatewayStatus))
		})
	}
}

func TestGetPayment(t *testing.T) {
	t.Run("pagamento existente é decodificado", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments/123", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":123,"status":"approved","transaction_amount":29.9}`))
		}))
		defer srv.Close()

		client := NewClient("test-token")
		client.apiURL = srv.URL

		payment, err := client.GetPayment(context.Background(), "123")

		assert.NoError(t, err)
		assert.Equal(t, int64(123), payment.ID)
		assert.Equal(t, "approved", payment.Status)
	})

	t.Run("404 do gateway vira ErrPaymentNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("test-token")
		client.apiURL = srv.URL

		_, err := client.GetPayment(context.Background(), "999")

		assert.True(t, errors.Is(err, ErrPaymentNotFound))
	})

	t.Run("erro inesperado do gateway é propagado", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient("test-token")
		client.apiURL = srv.URL

		_, err := client.GetPayment(context.Background(), "123")

		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrPaymentNotFound))
	})
}

func TestCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":555,"status":"pending","transaction_amount":29.9,
			"point_of_interaction":{"transaction_data":{"qr_code":"00020126pix"}}}`))
	}))
	defer srv.Close()

	client := NewClient("test-token")
	client.apiURL = srv.URL

	payment, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		TransactionAmount: 29.90,
		PaymentMethodID:   "pix",
		Payer:             Payer{Email: "user@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(555), payment.ID)
	assert.Equal(t, "00020126pix", payment.PointOfInteraction.TransactionData.QRCode)
}
