// Package requestreset implementa o handler que emite o token de
// redefinição de senha e o envia por e-mail.
package requestreset

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
)

// Request é o corpo de entrada da solicitação de redefinição.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Service descreve a emissão do token de redefinição.
type Service interface {
	RequestReset(ctx context.Context, email string) error
}

// Handler processa as solicitações de redefinição de senha.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.requestreset"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.RequestReset(r.Context(), req.Email); err != nil {
		log.Error("failed to request password reset", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	// Resposta idêntica para e-mails conhecidos e desconhecidos.
	render.JSON(w, r, map[string]any{
		"message": "if the email exists, a reset token was sent",
	})
}
