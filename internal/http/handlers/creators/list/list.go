// Package list implementa o handler de listagem paginada de criadores.
//
// Os criadores vêm ordenados por contagem decrescente de vídeos e a
// resposta carrega o bloco de paginação com hasMore.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/services/catalog"
)

// Service descreve a listagem de criadores na camada de negócio.
type Service interface {
	ListCreators(ctx context.Context, page, limit int) (*catalog.CreatorPage, error)
}

// Handler processa as requisições de listagem de criadores.
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
	const op = "handlers.creators.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = catalog.DefaultLimit
	}

	res, err := h.service.ListCreators(r.Context(), page, limit)
	if err != nil {
		log.Error("failed to list creators", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("listed creators", slog.Int("count", len(res.Creators)))
	render.JSON(w, r, res)
}
