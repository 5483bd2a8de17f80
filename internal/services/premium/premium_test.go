package premium

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// MockUserRepository implementa UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name       string
		premium    bool
		expireDate *time.Time
		expected   bool
	}{
		{
			name:       "premium com expiração futura está ativo",
			premium:    true,
			expireDate: &future,
			expected:   true,
		},
		{
			name:       "premium expirado não está ativo",
			premium:    true,
			expireDate: &past,
			expected:   false,
		},
		{
			name:       "flag premium sem data de expiração não basta",
			premium:    true,
			expireDate: nil,
			expected:   false,
		},
		{
			name:       "sem flag premium a data futura é irrelevante",
			premium:    false,
			expireDate: &future,
			expected:   false,
		},
		{
			name:       "expiração exatamente em now não está ativa",
			premium:    true,
			expireDate: &now,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Active(tt.premium, tt.expireDate, now))
		})
	}
}

func TestCheckStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("usuário premium vigente", func(t *testing.T) {
		future := time.Now().Add(48 * time.Hour)
		paymentDate := time.Now().Add(-time.Hour)
		repo := new(MockUserRepository)
		repo.On("GetUser", mock.Anything, "uid-1").Return(&models.User{
			UID:           "uid-1",
			Premium:       true,
			ExpireDate:    &future,
			PaymentStatus: models.PaymentStatusCompleted,
			PaymentDate:   &paymentDate,
		}, nil)

		service := New(repo, logger)
		status, err := service.CheckStatus(context.Background(), "uid-1")

		assert.NoError(t, err)
		assert.True(t, status.IsActive)
		assert.True(t, status.Premium)
		assert.Equal(t, models.PaymentStatusCompleted, status.PaymentStatus)
		repo.AssertExpectations(t)
	})

	t.Run("flag premium com expiração vencida resulta inativo", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		repo := new(MockUserRepository)
		repo.On("GetUser", mock.Anything, "uid-2").Return(&models.User{
			UID:        "uid-2",
			Premium:    true,
			ExpireDate: &past,
		}, nil)

		service := New(repo, logger)
		status, err := service.CheckStatus(context.Background(), "uid-2")

		assert.NoError(t, err)
		assert.True(t, status.Premium)
		assert.False(t, status.IsActive)
	})

	t.Run("usuário inexistente propaga ErrNotFound", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUser", mock.Anything, "uid-3").Return(nil, repository.ErrNotFound)

		service := New(repo, logger)
		status, err := service.CheckStatus(context.Background(), "uid-3")

		assert.Nil(t, status)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
