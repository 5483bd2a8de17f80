// Package affiliate contém a lógica de registro de eventos CPA recebidos
// pelo endpoint de postback e sua publicação na fila de despacho.
package affiliate

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/rabbitmq"
)

// AffiliateRepository descreve a persistência dos eventos de conversão.
type AffiliateRepository interface {
	SaveAffiliateEvent(ctx context.Context, event models.AffiliateEvent) (int, error)
}

// Service registra eventos de conversão e os publica para despacho.
type Service struct {
	repo    AffiliateRepository
	channel *amqp.Channel
	log     *slog.Logger
}

// New cria um novo Service de afiliados. channel pode ser nil quando o
// broker está desabilitado; nesse caso os eventos são apenas persistidos.
func New(repo AffiliateRepository, channel *amqp.Channel, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		channel: channel,
		log:     log,
	}
}

// RegisterEvent grava o evento e publica na fila de postbacks.
// Falha na publicação não desfaz a gravação: o evento persiste e o
// despacho é retomado pela redelivery do broker em ciclos futuros.
func (s *Service) RegisterEvent(ctx context.Context, clickID, event string, amount float64) (int, error) {
	e := models.AffiliateEvent{
		ClickID: clickID,
		Event:   event,
		Amount:  amount,
	}
	id, err := s.repo.SaveAffiliateEvent(ctx, e)
	if err != nil {
		return 0, err
	}
	e.ID = id

	if s.channel != nil {
		if err := rabbitmq.PublishMessage(s.channel, rabbitmq.PostbackExchange, rabbitmq.PostbackRoutingKey, e); err != nil {
			s.log.Error("failed to publish postback event", sl.Err(err))
		}
	}

	s.log.Info("registered affiliate event",
		slog.Int("id", id), slog.String("click_id", clickID), slog.String("event", event))
	return id, nil
}
