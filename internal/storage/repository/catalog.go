package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mateuslro/creator-hub/internal/models"
)

// ListCreators devolve os criadores ordenados por contagem decrescente de
// vídeos, com paginação por limit/offset.
func (s *Storage) ListCreators(ctx context.Context, limit, offset int) ([]*models.Creator, error) {
	const op = "storage.ListCreators"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.name, c.slug, c.avatar_url, COUNT(v.id) AS video_count
			  FROM creators c
			  LEFT JOIN videos v ON v.creator_id = c.id
			  GROUP BY c.id, c.name, c.slug, c.avatar_url
			  ORDER BY video_count DESC, c.id ASC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Creator
	for rows.Next() {
		var c models.Creator
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.AvatarURL, &c.VideoCount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetCreator devolve o criador pelo id. ErrNotFound quando ausente.
func (s *Storage) GetCreator(ctx context.Context, id int) (*models.Creator, error) {
	const op = "storage.GetCreator"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.name, c.slug, c.avatar_url, COUNT(v.id) AS video_count
			  FROM creators c
			  LEFT JOIN videos v ON v.creator_id = c.id
			  WHERE c.id = $1
			  GROUP BY c.id, c.name, c.slug, c.avatar_url`
	var c models.Creator
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.AvatarURL, &c.VideoCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListTags devolve todas as tags ordenadas por nome ascendente.
func (s *Storage) ListTags(ctx context.Context) ([]*models.Tag, error) {
	const op = "storage.ListTags"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT t.id, t.name, t.slug, COUNT(vt.video_id) AS video_count
			  FROM tags t
			  LEFT JOIN video_tags vt ON vt.tag_id = t.id
			  GROUP BY t.id, t.name, t.slug
			  ORDER BY t.name ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.VideoCount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTagBySlug devolve a tag pelo slug. ErrNotFound quando ausente.
func (s *Storage) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	const op = "storage.GetTagBySlug"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT t.id, t.name, t.slug, COUNT(vt.video_id) AS video_count
			  FROM tags t
			  LEFT JOIN video_tags vt ON vt.tag_id = t.id
			  WHERE t.slug = $1
			  GROUP BY t.id, t.name, t.slug`
	var t models.Tag
	err := s.DB.QueryRowContext(ctx, query, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.VideoCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}
