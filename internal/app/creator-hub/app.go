// Package creatorhub monta e executa o servidor HTTP principal:
// armazenamento, cache, broker, serviços e rotas.
package creatorhub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/mateuslro/creator-hub/internal/cache"
	"github.com/mateuslro/creator-hub/internal/config"
	"github.com/mateuslro/creator-hub/internal/lib/jwt"
	"github.com/mateuslro/creator-hub/internal/lib/smtp"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/mercadopago"
	"github.com/mateuslro/creator-hub/internal/migrations"
	"github.com/mateuslro/creator-hub/internal/rabbitmq"
	affiliateservice "github.com/mateuslro/creator-hub/internal/services/affiliate"
	authservice "github.com/mateuslro/creator-hub/internal/services/auth"
	catalogservice "github.com/mateuslro/creator-hub/internal/services/catalog"
	moderationservice "github.com/mateuslro/creator-hub/internal/services/moderation"
	paymentservice "github.com/mateuslro/creator-hub/internal/services/payment"
	premiumservice "github.com/mateuslro/creator-hub/internal/services/premium"
	"github.com/mateuslro/creator-hub/internal/sites"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	rabbit *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	resolver, err := sites.Load(cfg.SitesPath)
	if err != nil {
		return nil, err
	}

	var rabbitConn *amqp.Connection
	var channel *amqp.Channel
	if cfg.RabbitMQ.RabbitConnection != "" {
		rabbitConn, err = rabbitmq.Connect(cfg.RabbitMQ.RabbitConnection, cfg.RabbitMQ.ConnectRetries, cfg.RabbitMQ.ConnectDelay)
		if err != nil {
			return nil, err
		}
		channel, err = rabbitmq.SetupChannel(rabbitConn)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("rabbitmq connection not configured, postback publishing disabled")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	transport := smtp.NewTransport(cfg, logger)
	gateway := mercadopago.NewClient(cfg.MercadoPago.AccessToken)

	authService := authservice.New(db, jwtMaker, transport, cfg.Premium.ResetTTL, logger)
	premiumService := premiumservice.New(db, logger)
	catalogService := catalogservice.New(db, cacheRedis, logger)
	paymentService := paymentservice.New(db, gateway, cfg.Premium.PlanPrice, cfg.Premium.PlanDays, logger)
	moderationService := moderationservice.New(db, logger)
	affiliateService := affiliateservice.New(db, channel, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, resolver, db, cfg, Services{
		Auth:       authService,
		Premium:    premiumService,
		Catalog:    catalogService,
		Payment:    paymentService,
		Moderation: moderationService,
		Affiliate:  affiliateService,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		rabbit: rabbitConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		if a.rabbit != nil {
			if closeErr := a.rabbit.Close(); closeErr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(closeErr))
			}
		}
		return err
	}
}
