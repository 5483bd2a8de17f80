package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mateuslro/creator-hub/internal/models"
)

// SavePayment grava um novo pagamento e devolve o id interno.
func (s *Storage) SavePayment(ctx context.Context, payment models.Payment) (int, error) {
	const op = "storage.SavePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (user_uid, payment_id, status, amount, transaction_date)
			  VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		payment.UserUID, payment.PaymentID, payment.Status, payment.Amount).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

func scanPayment(row *sql.Row) (*models.Payment, error) {
	p := &models.Payment{}
	if err := row.Scan(&p.ID, &p.UserUID, &p.PaymentID, &p.Status,
		&p.Amount, &p.TransactionDate); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment devolve o pagamento pelo id interno. ErrNotFound quando ausente.
func (s *Storage) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	const op = "storage.GetPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, payment_id, status, amount, transaction_date
			  FROM payments
			  WHERE id = $1`
	p, err := scanPayment(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetPaymentByGatewayID devolve o pagamento pela referência do gateway.
func (s *Storage) GetPaymentByGatewayID(ctx context.Context, paymentID string) (*models.Payment, error) {
	const op = "storage.GetPaymentByGatewayID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, payment_id, status, amount, transaction_date
			  FROM payments
			  WHERE payment_id = $1`
	p, err := scanPayment(s.DB.QueryRowContext(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdatePaymentStatus atualiza o status normalizado do pagamento
// identificado pela referência do gateway.
func (s *Storage) UpdatePaymentStatus(ctx context.Context, paymentID, status string) error {
	const op = "storage.UpdatePaymentStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE payments
			  SET status = $1
			  WHERE payment_id = $2`
	res, err := s.DB.ExecContext(ctx, query, status, paymentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
