// Package moderation contém a lógica das solicitações de remoção de
// conteúdo: criação pelo formulário público e listagem administrativa.
package moderation

import (
	"context"
	"log/slog"

	"github.com/mateuslro/creator-hub/internal/models"
)

// RemovalRepository descreve a persistência das solicitações de remoção.
type RemovalRepository interface {
	CreateRemovalRequest(ctx context.Context, req models.RemovalRequest) (int, error)
	ListRemovalRequests(ctx context.Context, limit, offset int) ([]*models.RemovalRequest, error)
}

// Service implementa as operações de moderação.
type Service struct {
	repo RemovalRepository
	log  *slog.Logger
}

// New cria um novo Service de moderação.
func New(repo RemovalRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateRequest registra uma nova solicitação de remoção com status pendente.
func (s *Service) CreateRequest(ctx context.Context, url, reason, email string) (int, error) {
	id, err := s.repo.CreateRemovalRequest(ctx, models.RemovalRequest{
		URL:    url,
		Reason: reason,
		Email:  email,
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("created removal request", slog.Int("id", id))
	return id, nil
}

// ListRequests devolve as solicitações mais recentes primeiro.
func (s *Service) ListRequests(ctx context.Context, limit, offset int) ([]*models.RemovalRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListRemovalRequests(ctx, limit, offset)
}
