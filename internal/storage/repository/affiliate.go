package repository

import (
	"context"
	"fmt"

	"github.com/mateuslro/creator-hub/internal/models"
)

// SaveAffiliateEvent grava um evento de conversão CPA e devolve o id gerado.
func (s *Storage) SaveAffiliateEvent(ctx context.Context, event models.AffiliateEvent) (int, error) {
	const op = "storage.SaveAffiliateEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO affiliate_events (click_id, event, amount)
			  VALUES ($1, $2, $3) RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		event.ClickID, event.Event, event.Amount).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
