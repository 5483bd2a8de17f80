package repository

import (
	"context"
	"fmt"

	"github.com/mateuslro/creator-hub/internal/models"
)

// CreateRemovalRequest grava uma nova solicitação de remoção de conteúdo
// e devolve o id gerado.
func (s *Storage) CreateRemovalRequest(ctx context.Context, req models.RemovalRequest) (int, error) {
	const op = "storage.CreateRemovalRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO removal_requests (url, reason, email, status)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		req.URL, req.Reason, req.Email, models.RemovalStatusPending).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListRemovalRequests devolve as solicitações de remoção, mais recentes primeiro.
func (s *Storage) ListRemovalRequests(ctx context.Context, limit, offset int) ([]*models.RemovalRequest, error) {
	const op = "storage.ListRemovalRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, url, reason, email, status, created_at
			  FROM removal_requests
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.RemovalRequest
	for rows.Next() {
		var rr models.RemovalRequest
		if err := rows.Scan(&rr.ID, &rr.URL, &rr.Reason, &rr.Email, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &rr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
