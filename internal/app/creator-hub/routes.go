// Package creatorhub fornece as rotas do aplicativo principal.
package creatorhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mateuslro/creator-hub/internal/config"
	"github.com/mateuslro/creator-hub/internal/http/handlers/affiliate/postback"
	"github.com/mateuslro/creator-hub/internal/http/handlers/auth/login"
	"github.com/mateuslro/creator-hub/internal/http/handlers/auth/register"
	"github.com/mateuslro/creator-hub/internal/http/handlers/auth/requestreset"
	"github.com/mateuslro/creator-hub/internal/http/handlers/auth/resetpassword"
	"github.com/mateuslro/creator-hub/internal/http/handlers/auth/setpassword"
	creatorslist "github.com/mateuslro/creator-hub/internal/http/handlers/creators/list"
	creatorsread "github.com/mateuslro/creator-hub/internal/http/handlers/creators/read"
	"github.com/mateuslro/creator-hub/internal/http/handlers/health"
	mpcheck "github.com/mateuslro/creator-hub/internal/http/handlers/mercadopago/check"
	mpcreate "github.com/mateuslro/creator-hub/internal/http/handlers/mercadopago/create"
	mpstatus "github.com/mateuslro/creator-hub/internal/http/handlers/mercadopago/status"
	mpwebhook "github.com/mateuslro/creator-hub/internal/http/handlers/mercadopago/webhook"
	premiumstatus "github.com/mateuslro/creator-hub/internal/http/handlers/premium/status"
	removaladminlist "github.com/mateuslro/creator-hub/internal/http/handlers/removal/adminlist"
	removalcreate "github.com/mateuslro/creator-hub/internal/http/handlers/removal/create"
	tagslist "github.com/mateuslro/creator-hub/internal/http/handlers/tags/list"
	tagsread "github.com/mateuslro/creator-hub/internal/http/handlers/tags/read"
	"github.com/mateuslro/creator-hub/internal/http/middlewarectx"
	affiliateservice "github.com/mateuslro/creator-hub/internal/services/affiliate"
	authservice "github.com/mateuslro/creator-hub/internal/services/auth"
	catalogservice "github.com/mateuslro/creator-hub/internal/services/catalog"
	moderationservice "github.com/mateuslro/creator-hub/internal/services/moderation"
	paymentservice "github.com/mateuslro/creator-hub/internal/services/payment"
	premiumservice "github.com/mateuslro/creator-hub/internal/services/premium"
	"github.com/mateuslro/creator-hub/internal/sites"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// Services agrupa os serviços consumidos pelas rotas.
type Services struct {
	Auth       *authservice.Service
	Premium    *premiumservice.Service
	Catalog    *catalogservice.Service
	Payment    *paymentservice.Service
	Moderation *moderationservice.Service
	Affiliate  *affiliateservice.Service
}

// RegisterRoutes registra todas as rotas do aplicativo.
func RegisterRoutes(r chi.Router, logger *slog.Logger, resolver *sites.Resolver, db *repository.Storage, cfg *config.Config, svc Services) {
	// Middleware globais
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.DomainMiddleware(resolver))

	r.Route("/api", func(r chi.Router) {
		// Conta e sessão
		r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/request-reset", requestreset.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/reset-password", resetpassword.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/set-password", setpassword.New(logger, svc.Auth).ServeHTTP)

		// Catálogo público
		r.Get("/creators", creatorslist.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/creators/{id}", creatorsread.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/tags", tagslist.New(logger, svc.Catalog).ServeHTTP)
		r.Get("/tags/{slug}", tagsread.New(logger, svc.Catalog).ServeHTTP)

		// Pagamentos: consultas públicas e notificação do gateway
		r.Get("/mercado-pago/status", mpstatus.New(logger, svc.Payment).ServeHTTP)
		r.Post("/mercado-pago/check-payment", mpcheck.New(logger, svc.Payment).ServeHTTP)
		r.Post("/mercado-pago/webhook", mpwebhook.New(logger, svc.Payment, cfg.MercadoPago.WebhookSecret).ServeHTTP)

		// Moderação: formulário público
		r.Post("/remocao", removalcreate.New(logger, svc.Moderation).ServeHTTP)

		// Afiliados
		r.Get("/postback", postback.New(logger, svc.Affiliate).ServeHTTP)

		// Grupo autenticado
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/premium/check-user-status", premiumstatus.New(logger, svc.Premium).ServeHTTP)
			r.Post("/mercado-pago/create-payment", mpcreate.New(logger, svc.Payment).ServeHTTP)
		})

		// Grupo administrativo
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.AdminMiddleware(db, logger))
			r.Get("/admin/remocao", removaladminlist.New(logger, svc.Moderation).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
