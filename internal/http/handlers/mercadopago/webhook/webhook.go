// Package webhook implementa o recebimento de notificações do gateway
// de pagamento.
//
// A assinatura HMAC-SHA256 do corpo bruto é conferida antes de qualquer
// processamento; o status notificado nunca é usado diretamente, o
// pagamento é sempre reconsultado no gateway.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/mercadopago"
)

// Event é o payload mínimo da notificação.
type Event struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Service descreve o processamento da notificação de pagamento.
type Service interface {
	ProcessWebhookEvent(ctx context.Context, gatewayPaymentID string) error
}

// Handler processa as notificações do gateway.
type Handler struct {
	log     *slog.Logger
	service Service
	secret  string
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service, secret string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mercadopago.webhook"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to read request"))
		return
	}

	if !h.verifySignature(body, r.Header.Get("x-signature")) {
		log.Error("invalid webhook signature")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid signature"))
		return
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		log.Error("failed to decode webhook payload", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if event.Type != "payment" || event.Data.ID == "" {
		log.Info("ignoring webhook event", slog.String("type", event.Type))
		render.JSON(w, r, map[string]any{"status": "ignored"})
		return
	}

	if err := h.service.ProcessWebhookEvent(r.Context(), event.Data.ID); err != nil {
		if errors.Is(err, mercadopago.ErrPaymentNotFound) {
			log.Error("payment not found at gateway", slog.String("paymentId", event.Data.ID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("payment not found"))
			return
		}
		log.Error("failed to process webhook event", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, map[string]any{"status": "ok"})
}

func (h *Handler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
