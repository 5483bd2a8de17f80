// Package catalog contém a lógica de negócio do catálogo de criadores e
// tags, incluindo paginação e cache das listagens.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mateuslro/creator-hub/internal/models"
)

// DefaultLimit é o tamanho de página usado quando o cliente não informa limit.
const DefaultLimit = 10

const cacheTTL = 10 * time.Minute

// CatalogRepository descreve as consultas de catálogo no armazenamento.
type CatalogRepository interface {
	// ListCreators devolve criadores por contagem decrescente de vídeos.
	ListCreators(ctx context.Context, limit, offset int) ([]*models.Creator, error)
	// GetCreator devolve o criador pelo id.
	GetCreator(ctx context.Context, id int) (*models.Creator, error)
	// ListTags devolve todas as tags ordenadas por nome.
	ListTags(ctx context.Context) ([]*models.Tag, error)
	// GetTagBySlug devolve a tag pelo slug.
	GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error)
}

// Cache descreve o cache de listagens. O status premium de usuários
// nunca passa por este cache.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// CreatorPage é a página de criadores devolvida pela listagem.
type CreatorPage struct {
	Creators   []*models.Creator `json:"creators"`
	Pagination models.Pagination `json:"pagination"`
}

// Service implementa as operações de catálogo com cache de leitura.
type Service struct {
	repo  CatalogRepository
	cache Cache
	log   *slog.Logger
}

// New cria um novo Service de catálogo.
func New(repo CatalogRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListCreators devolve a página pedida de criadores, ordenados por contagem
// decrescente de vídeos. HasMore é derivado buscando limit+1 registros.
func (s *Service) ListCreators(ctx context.Context, page, limit int) (*CreatorPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	cacheKey := fmt.Sprintf("creators:page:%d:limit:%d", page, limit)
	var cached CreatorPage
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read creators page from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	offset := (page - 1) * limit
	creators, err := s.repo.ListCreators(ctx, limit+1, offset)
	if err != nil {
		return nil, err
	}

	hasMore := len(creators) > limit
	if hasMore {
		creators = creators[:limit]
	}

	result := &CreatorPage{
		Creators: creators,
		Pagination: models.Pagination{
			Page:    page,
			Limit:   limit,
			HasMore: hasMore,
		},
	}

	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache creators page", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// GetCreator devolve o criador pelo id.
func (s *Service) GetCreator(ctx context.Context, id int) (*models.Creator, error) {
	return s.repo.GetCreator(ctx, id)
}

// ListTags devolve todas as tags em ordem ascendente de nome.
func (s *Service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	const cacheKey = "tags:all"

	var cached []*models.Tag
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read tags from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	if err := s.cache.Set(cacheKey, tags, cacheTTL); err != nil {
		s.log.Warn("failed to cache tags", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return tags, nil
}

// GetTagBySlug devolve a tag pelo slug.
func (s *Service) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return s.repo.GetTagBySlug(ctx, slug)
}
