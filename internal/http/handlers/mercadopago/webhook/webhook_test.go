package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService implementa webhook.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) ProcessWebhookEvent(ctx context.Context, gatewayPaymentID string) error {
	args := m.Called(ctx, gatewayPaymentID)
	return args.Error(0)
}

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	const secret = "webhook-secret"

	tests := []struct {
		name           string
		body           string
		signature      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "notificação de pagamento válida é processada",
			body:      `{"type":"payment","data":{"id":"555"}}`,
			signature: sign(secret, `{"type":"payment","data":{"id":"555"}}`),
			setupMock: func(m *MockService) {
				m.On("ProcessWebhookEvent", mock.Anything, "555").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "assinatura inválida devolve 401 sem processar",
			body:           `{"type":"payment","data":{"id":"555"}}`,
			signature:      "assinatura-falsa",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid signature"`,
		},
		{
			name:           "sem assinatura devolve 401",
			body:           `{"type":"payment","data":{"id":"555"}}`,
			signature:      "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid signature"`,
		},
		{
			name:           "evento de outro tipo é ignorado",
			body:           `{"type":"plan","data":{"id":"1"}}`,
			signature:      sign(secret, `{"type":"plan","data":{"id":"1"}}`),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ignored"`,
		},
		{
			name:           "payload não-JSON devolve 400",
			body:           `isto nao e json`,
			signature:      sign(secret, `isto nao e json`),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode request"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, secret)

			req := httptest.NewRequest(http.MethodPost, "/api/mercado-pago/webhook", strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set("x-signature", tt.signature)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
			if tt.expectedStatus == http.StatusUnauthorized {
				mockService.AssertNotCalled(t, "ProcessWebhookEvent", mock.Anything, mock.Anything)
			}
		})
	}
}
