// Package status implementa a consulta de status de pagamento pelo id
// interno, via query string.
//
// O identificador precisa ser numérico; entrada malformada devolve 400
// antes de qualquer acesso ao armazenamento.
package status

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// Service descreve a consulta de pagamento pelo id interno.
type Service interface {
	StatusByID(ctx context.Context, id int) (*models.Payment, error)
}

// Handler processa as consultas de status de pagamento.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mercadopago.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	raw := r.URL.Query().Get("paymentId")
	if raw == "" {
		log.Error("missing paymentId query parameter")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing paymentId"))
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Error("non-numeric paymentId", slog.String("paymentId", raw))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("paymentId must be numeric"))
		return
	}

	payment, err := h.service.StatusByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("payment not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("payment not found"))
			return
		}
		log.Error("failed to read payment status", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, map[string]any{
		"id":     payment.ID,
		"status": payment.Status,
	})
}
