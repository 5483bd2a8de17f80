package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mateuslro/creator-hub/internal/models"
)

// CreateResetToken grava um token de redefinição de senha com validade.
func (s *Storage) CreateResetToken(ctx context.Context, token, userUID string, expiresAt time.Time) error {
	const op = "storage.CreateResetToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO password_reset_tokens (token, user_uid, expires_at)
			  VALUES ($1, $2, $3)`
	_, err := s.DB.ExecContext(ctx, query, token, userUID, expiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetResetToken devolve o token de redefinição. ErrNotFound quando ausente.
func (s *Storage) GetResetToken(ctx context.Context, token string) (*models.ResetToken, error) {
	const op = "storage.GetResetToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT token, user_uid, expires_at, used
			  FROM password_reset_tokens
			  WHERE token = $1`
	var rt models.ResetToken
	err := s.DB.QueryRowContext(ctx, query, token).Scan(&rt.Token, &rt.UserUID, &rt.ExpiresAt, &rt.Used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rt, nil
}

// MarkResetTokenUsed marca o token como consumido.
func (s *Storage) MarkResetTokenUsed(ctx context.Context, token string) error {
	const op = "storage.MarkResetTokenUsed"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE password_reset_tokens
			  SET used = TRUE
			  WHERE token = $1`
	_, err := s.DB.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
