// Package postback implementa o endpoint de recebimento de conversões
// CPA das redes de afiliados.
package postback

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
)

// Service descreve o registro de eventos de conversão.
type Service interface {
	RegisterEvent(ctx context.Context, clickID, event string, amount float64) (int, error)
}

// Handler processa os postbacks de conversão.
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
	const op = "handlers.affiliate.postback"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	clickID := q.Get("click_id")
	event := q.Get("event")
	if clickID == "" || event == "" {
		log.Error("missing click_id or event")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("click_id and event are required"))
		return
	}

	var amount float64
	if raw := q.Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Error("non-numeric amount", slog.String("amount", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("amount must be numeric"))
			return
		}
		amount = parsed
	}

	id, err := h.service.RegisterEvent(r.Context(), clickID, event, amount)
	if err != nil {
		log.Error("failed to register affiliate event", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, map[string]any{"id": id, "status": "recorded"})
}
