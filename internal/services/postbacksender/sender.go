// Package postbacksender implementa o worker que consome a fila de eventos
// de conversão e dispara o postback HTTP para a rede de afiliados.
package postbacksender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mateuslro/creator-hub/internal/models"
)

// Service dispara postbacks de conversão para a rede de afiliados.
// A URL configurada aceita os marcadores {click_id} e {event}.
type Service struct {
	postbackURL string
	httpClient  *http.Client
	log         *slog.Logger
}

// New cria um novo Service de despacho de postbacks.
func New(postbackURL string, log *slog.Logger) *Service {
	return &Service{
		postbackURL: postbackURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

// HandleMessage processa uma mensagem da fila. Erro devolvido gera nack com
// requeue no consumidor; não há retry local.
func (s *Service) HandleMessage(body []byte) error {
	const op = "postbacksender.HandleMessage"

	var event models.AffiliateEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	target := s.buildURL(event)
	resp, err := s.httpClient.Get(target)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s: postback rejected with status %s", op, resp.Status)
	}

	s.log.Info("postback delivered",
		slog.String("click_id", event.ClickID),
		slog.String("event", event.Event),
		slog.Int("status", resp.StatusCode))
	return nil
}

func (s *Service) buildURL(event models.AffiliateEvent) string {
	target := strings.ReplaceAll(s.postbackURL, "{click_id}", url.QueryEscape(event.ClickID))
	target = strings.ReplaceAll(target, "{event}", url.QueryEscape(event.Event))
	return target
}
