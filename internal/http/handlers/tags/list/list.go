// Package list implementa o handler de listagem de tags, ordenadas por
// nome ascendente.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/models"
)

// Service descreve a listagem de tags na camada de negócio.
type Service interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
}

// Handler processa as requisições de listagem de tags.
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
	const op = "handlers.tags.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		log.Error("failed to list tags", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("listed tags", slog.Int("count", len(tags)))
	render.JSON(w, r, tags)
}
