package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mateuslro/creator-hub/internal/lib/jwt"
	"github.com/mateuslro/creator-hub/internal/lib/password"
	"github.com/mateuslro/creator-hub/internal/lib/smtp"
	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// MockUserRepository implementa UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userUID, passwordHash string) error {
	args := m.Called(ctx, userUID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) CreateResetToken(ctx context.Context, token, userUID string, expiresAt time.Time) error {
	args := m.Called(ctx, token, userUID, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) GetResetToken(ctx context.Context, token string) (*models.ResetToken, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*models.ResetToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) MarkResetTokenUsed(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// fakeSMTPClient grava a mensagem em memória.
type fakeSMTPClient struct {
	buf bytes.Buffer
}

func (c *fakeSMTPClient) Mail(string) error { return nil }
func (c *fakeSMTPClient) Rcpt(string) error { return nil }
func (c *fakeSMTPClient) Data() (io.WriteCloser, error) {
	return nopWriteCloser{&c.buf}, nil
}
func (c *fakeSMTPClient) Quit() error  { return nil }
func (c *fakeSMTPClient) Close() error { return nil }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// fakeTransport implementa smtp.TransportInterface sobre o cliente em memória.
type fakeTransport struct {
	client *fakeSMTPClient
	err    error
}

func (t *fakeTransport) Connect() (smtp.Client, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.client, nil
}

func (t *fakeTransport) GetSMTPUser() string { return "noreply@example.com" }

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newService(users UserRepository, transport smtp.TransportInterface) *Service {
	return New(users, jwt.NewJWTMaker("test-secret", time.Hour), transport, time.Hour, newLogger())
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"maiúsculas viram minúsculas", "User@Example.COM", "user@example.com"},
		{"espaços nas pontas são removidos", "  user@example.com  ", "user@example.com"},
		{"e-mail já normalizado permanece", "user@example.com", "user@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.email))
		})
	}
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		// O e-mail é normalizado e a senha nunca é gravada em claro.
		return u.Email == "user@example.com" &&
			u.Access == 0 &&
			u.PasswordHash != "senha123" &&
			password.CompareHash(u.PasswordHash, "senha123") == nil
	})).Return("uid-1", nil)

	service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
	uid, err := service.Register(context.Background(), "User@Example.com ", "senha123")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hashed, err := password.GetHash("senha123")
	assert.NoError(t, err)

	t.Run("credenciais corretas devolvem token e usuário", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
			UID:          "uid-1",
			Email:        "user@example.com",
			PasswordHash: hashed,
			Access:       0,
		}, nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		token, user, err := service.Login(context.Background(), "User@example.com", "senha123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "uid-1", user.UID)

		claims, err := service.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", claims.UserUID)
	})

	t.Run("senha errada devolve ErrInvalidCredentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
			UID:          "uid-1",
			PasswordHash: hashed,
		}, nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		_, _, err := service.Login(context.Background(), "user@example.com", "outra-senha")

		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("e-mail desconhecido devolve ErrInvalidCredentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		_, _, err := service.Login(context.Background(), "ghost@example.com", "senha123")

		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestRequestReset(t *testing.T) {
	t.Run("e-mail conhecido grava o token e envia a mensagem", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
			UID:   "uid-1",
			Email: "user@example.com",
		}, nil)
		repo.On("CreateResetToken", mock.Anything, mock.Anything, "uid-1", mock.Anything).Return(nil)

		client := &fakeSMTPClient{}
		service := newService(repo, &fakeTransport{client: client})
		err := service.RequestReset(context.Background(), "user@example.com")

		assert.NoError(t, err)
		assert.Contains(t, client.buf.String(), "Redefinicao de senha")
		repo.AssertExpectations(t)
	})

	t.Run("e-mail desconhecido é silenciosamente aceito", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.RequestReset(context.Background(), "ghost@example.com")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "CreateResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("token válido troca a senha e é consumido", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetResetToken", mock.Anything, "token-1").Return(&models.ResetToken{
			Token:     "token-1",
			UserUID:   "uid-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		repo.On("UpdatePasswordHash", mock.Anything, "uid-1", mock.Anything).Return(nil)
		repo.On("MarkResetTokenUsed", mock.Anything, "token-1").Return(nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.ResetPassword(context.Background(), "token-1", "nova-senha")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("token expirado devolve erro sem tocar o usuário", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetResetToken", mock.Anything, "token-2").Return(&models.ResetToken{
			Token:     "token-2",
			UserUID:   "uid-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.ResetPassword(context.Background(), "token-2", "nova-senha")

		assert.True(t, errors.Is(err, ErrInvalidResetToken))
		repo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token já usado devolve erro", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetResetToken", mock.Anything, "token-3").Return(&models.ResetToken{
			Token:     "token-3",
			UserUID:   "uid-1",
			ExpiresAt: time.Now().Add(time.Hour),
			Used:      true,
		}, nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.ResetPassword(context.Background(), "token-3", "nova-senha")

		assert.True(t, errors.Is(err, ErrInvalidResetToken))
		repo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token desconhecido devolve erro", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetResetToken", mock.Anything, "token-x").Return(nil, repository.ErrNotFound)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.ResetPassword(context.Background(), "token-x", "nova-senha")

		assert.True(t, errors.Is(err, ErrInvalidResetToken))
	})
}

func TestSetPassword(t *testing.T) {
	t.Run("usuário existente tem o hash trocado", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
			UID:   "uid-1",
			Email: "user@example.com",
		}, nil)
		repo.On("UpdatePasswordHash", mock.Anything, "uid-1", mock.MatchedBy(func(hash string) bool {
			return password.CompareHash(hash, "nova-senha") == nil
		})).Return(nil)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.SetPassword(context.Background(), "User@Example.com", "nova-senha")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("usuário inexistente propaga ErrNotFound", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

		service := newService(repo, &fakeTransport{client: &fakeSMTPClient{}})
		err := service.SetPassword(context.Background(), "ghost@example.com", "nova-senha")

		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
