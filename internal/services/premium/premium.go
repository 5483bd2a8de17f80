// Package premium implementa a verificação de direito premium do usuário.
//
// O estado efetivo é sempre recalculado a partir da data de expiração
// armazenada, a cada chamada. Não há cache: o direito pode expirar entre
// duas requisições e um valor velho manteria acesso indevido.
package premium

import (
	"context"
	"log/slog"
	"time"

	"github.com/mateuslro/creator-hub/internal/models"
)

// UserRepository descreve a leitura de usuário usada pela verificação.
type UserRepository interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Service calcula o status premium efetivo de um usuário.
type Service struct {
	users UserRepository
	log   *slog.Logger
}

// New cria um novo Service de verificação premium.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Active informa se o direito premium está vigente no instante now.
// A flag bruta sozinha não basta: exige data de expiração presente e futura.
func Active(premium bool, expireDate *time.Time, now time.Time) bool {
	return premium && expireDate != nil && expireDate.After(now)
}

// CheckStatus carrega o usuário e devolve o status premium normalizado.
// Propaga repository.ErrNotFound quando a sessão referencia um usuário
// que não existe mais.
func (s *Service) CheckStatus(ctx context.Context, userUID string) (*models.PremiumStatus, error) {
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}

	return &models.PremiumStatus{
		Premium:       user.Premium,
		ExpireDate:    user.ExpireDate,
		PaymentStatus: user.PaymentStatus,
		PaymentDate:   user.PaymentDate,
		IsActive:      Active(user.Premium, user.ExpireDate, time.Now()),
	}, nil
}
