package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mateuslro/creator-hub/internal/models"
)

// RegisterUser grava um novo usuário e devolve o uid gerado.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, password_hash, access)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Access).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var expireDate, paymentDate sql.NullTime
	if err := row.Scan(&u.UID, &u.Email, &u.PasswordHash, &u.Access,
		&u.Premium, &expireDate, &u.PaymentStatus, &paymentDate); err != nil {
		return nil, err
	}
	if expireDate.Valid {
		u.ExpireDate = &expireDate.Time
	}
	if paymentDate.Valid {
		u.PaymentDate = &paymentDate.Time
	}
	return u, nil
}

// GetUser devolve o usuário pelo uid. ErrNotFound quando ausente.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, access,
			      premium, expire_date, payment_status, payment_date
			  FROM users
			  WHERE uid = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByEmail devolve o usuário pelo e-mail normalizado em minúsculas.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, access,
			      premium, expire_date, payment_status, payment_date
			  FROM users
			  WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdatePasswordHash troca o hash da senha do usuário.
func (s *Storage) UpdatePasswordHash(ctx context.Context, userUID, passwordHash string) error {
	const op = "storage.UpdatePasswordHash"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $1
			  WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, passwordHash, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GrantPremium concede premium ao usuário até expireDate e registra o
// status e a data do pagamento que originou a concessão.
func (s *Storage) GrantPremium(ctx context.Context, userUID string, expireDate time.Time, paymentStatus string) error {
	const op = "storage.GrantPremium"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET premium = TRUE,
			      expire_date = $1,
			      payment_status = $2,
			      payment_date = NOW()
			  WHERE uid = $3`
	_, err := s.DB.ExecContext(ctx, query, expireDate, paymentStatus, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdatePaymentStatusForUser registra o último status de pagamento do usuário
// sem alterar a flag premium nem a data de expiração.
func (s *Storage) UpdatePaymentStatusForUser(ctx context.Context, userUID, paymentStatus string) error {
	const op = "storage.UpdatePaymentStatusForUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET payment_status = $1
			  WHERE uid = $2`
	_, err := s.DB.ExecContext(ctx, query, paymentStatus, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
