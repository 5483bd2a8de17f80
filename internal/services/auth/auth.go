// Package auth contém a lógica de negócio de contas: cadastro, login,
// validação de sessão e os fluxos de redefinição de senha.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mateuslro/creator-hub/internal/lib/jwt"
	"github.com/mateuslro/creator-hub/internal/lib/password"
	"github.com/mateuslro/creator-hub/internal/lib/sl"
	"github.com/mateuslro/creator-hub/internal/lib/smtp"
	"github.com/mateuslro/creator-hub/internal/models"
	"github.com/mateuslro/creator-hub/internal/storage/repository"
)

// Erros de negócio devolvidos pelo serviço de contas.
var (
	// ErrInvalidCredentials indica e-mail ou senha incorretos no login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidResetToken indica token de redefinição desconhecido,
	// expirado ou já consumido. O usuário não é alterado nesse caso.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// UserRepository descreve o contrato de persistência usado pelo serviço.
type UserRepository interface {
	// RegisterUser grava um novo usuário e devolve o uid.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail devolve o usuário pelo e-mail normalizado.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdatePasswordHash troca o hash da senha.
	UpdatePasswordHash(ctx context.Context, userUID, passwordHash string) error
	// CreateResetToken grava um token de redefinição com validade.
	CreateResetToken(ctx context.Context, token, userUID string, expiresAt time.Time) error
	// GetResetToken devolve o token de redefinição.
	GetResetToken(ctx context.Context, token string) (*models.ResetToken, error)
	// MarkResetTokenUsed marca o token como consumido.
	MarkResetTokenUsed(ctx context.Context, token string) error
}

// Service implementa cadastro, login e redefinição de senha.
type Service struct {
	users     UserRepository
	jwtMaker  jwt.Maker
	transport smtp.TransportInterface
	resetTTL  time.Duration
	log       *slog.Logger
}

// New cria um novo Service de contas.
func New(users UserRepository, jwtMaker jwt.Maker, transport smtp.TransportInterface, resetTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		users:     users,
		jwtMaker:  jwtMaker,
		transport: transport,
		resetTTL:  resetTTL,
		log:       log,
	}
}

// NormalizeEmail normaliza o e-mail para minúsculas sem espaços nas pontas.
// Toda escrita e leitura de usuário por e-mail passa por aqui.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register cria um novo usuário comum (access 0) com hash bcrypt da senha.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        NormalizeEmail(email),
		PasswordHash: hashed,
		Access:       0,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login valida as credenciais e devolve o token de sessão e o usuário.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Access)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken valida o token de sessão e devolve os claims.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// RequestReset emite um token de redefinição e o envia por e-mail.
// E-mails desconhecidos não produzem erro, para não revelar contas existentes.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info("reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.resetTTL)
	if err := s.users.CreateResetToken(ctx, token, user.UID, expiresAt); err != nil {
		return err
	}

	if err := s.sendResetEmail(user.Email, token); err != nil {
		s.log.Error("failed to send reset email", sl.Err(err))
		return err
	}
	return nil
}

// ResetPassword consome o token e troca a senha. Token desconhecido,
// expirado ou já usado devolve ErrInvalidResetToken sem tocar no usuário.
func (s *Service) ResetPassword(ctx context.Context, token, rawPassword string) error {
	rt, err := s.users.GetResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if rt.Used || time.Now().After(rt.ExpiresAt) {
		return ErrInvalidResetToken
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, rt.UserUID, hashed); err != nil {
		return err
	}
	return s.users.MarkResetTokenUsed(ctx, token)
}

// SetPassword troca a senha do usuário identificado pelo e-mail.
func (s *Service) SetPassword(ctx context.Context, email, rawPassword string) error {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, user.UID, hashed)
}

func (s *Service) sendResetEmail(to, token string) error {
	const op = "auth.sendResetEmail"
	client, err := s.transport.Connect()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = client.Quit()
	}()

	from := s.transport.GetSMTPUser()
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Redefinicao de senha\r\n\r\n"+
		"Use o token abaixo para redefinir sua senha:\r\n\r\n%s\r\n", from, to, token)
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
