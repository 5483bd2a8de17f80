// Package middlewarectx contém os HTTP middlewares da aplicação: validação
// do token de sessão, guarda administrativa, resolução de domínio e limite
// de taxa.
//
// JWTMiddleware verifica a presença e a validade do JWT no cabeçalho
// Authorization e, em caso de sucesso, adiciona o uid, o e-mail e o nível
// de acesso do usuário ao contexto da requisição.
//
// Falha de verificação devolve HTTP 401 com o corpo de erro padrão.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mateuslro/creator-hub/internal/http/response"
	"github.com/mateuslro/creator-hub/internal/lib/jwt"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
)

// Key é o tipo das chaves de contexto da requisição.
type Key string

const (
	// UserUID é a chave do identificador do usuário no contexto.
	UserUID Key = "user_uid"
	// Email é a chave do e-mail do usuário no contexto.
	Email Key = "email"
	// Access é a chave do nível de acesso do usuário no contexto.
	Access Key = "access"
)

// TokenValidator descreve o serviço de validação do token de sessão.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
}

// JWTMiddleware devolve o middleware que valida o JWT do cabeçalho
// Authorization e popula o contexto com os dados da sessão.
func JWTMiddleware(authService TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), UserUID, claims.UserUID)
			ctx = context.WithValue(ctx, Email, claims.Email)
			ctx = context.WithValue(ctx, Access, claims.Access)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
