// Package postbacksender monta e executa o worker que consome a fila de
// conversões e dispara os postbacks na rede de afiliados.
package postbacksender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/mateuslro/creator-hub/internal/config"
	"github.com/mateuslro/creator-hub/internal/rabbitmq"
	senderservice "github.com/mateuslro/creator-hub/internal/services/postbacksender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	logger        *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.RabbitConnection, cfg.RabbitMQ.ConnectRetries, cfg.RabbitMQ.ConnectDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	senderService := senderservice.New(cfg.Affiliate.PostbackURL, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.PostbackQueue, a.senderService.HandleMessage)
	if err != nil {
		a.logger.Error("failed to start postback queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("postback-sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
