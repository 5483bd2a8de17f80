package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// UserProvider descreve a leitura do usuário para a guarda administrativa.
type UserProvider interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AdminMiddleware devolve o middleware que restringe a rota a usuários com
// nível de acesso administrativo. O nível é recarregado do armazenamento a
// cada requisição; não há cache de papel.
//
// Sem sessão devolve 401; sessão válida sem acesso administrativo, 403.
func AdminMiddleware(users UserProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			user, err := users.GetUser(r.Context(), userUID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					log.Error("session references missing user")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("unauthorized"))
					return
				}
				log.Error("failed to load user for admin check", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			if !user.IsAdmin() {
				log.Error("access denied for non-admin user")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
