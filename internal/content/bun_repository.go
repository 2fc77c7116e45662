package content

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunContentRepository struct {
	repo repository.Repository[*ContentPiece]
}

func NewBunContentRepository(db *bun.DB) *BunContentRepository {
	return NewBunContentRepositoryWithCache(db, nil, nil)
}

// NewBunContentRepositoryWithCache constructs a ContentRepository backed by bun
// with optional caching.
func NewBunContentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunContentRepository {
	base := NewContentPieceModelRepository(db)
	return &BunContentRepository{repo: wrapWithCache(base, cacheService, keySerializer)}
}

func (r *BunContentRepository) Create(ctx context.Context, record *ContentPiece) (*ContentPiece, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ContentPiece, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "content piece", id.String())
	}
	return result, nil
}

func (r *BunContentRepository) List(ctx context.Context, filter ContentFilter) ([]*ContentPiece, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if filter.State != nil {
			q = q.Where("?TableAlias.state = ?", string(*filter.State))
		}
		if filter.CampaignID != nil {
			q = q.Where("?TableAlias.campaign_id = ?", filter.CampaignID.String())
		}
		if len(filter.IDs) > 0 {
			ids := make([]string, 0, len(filter.IDs))
			for _, id := range filter.IDs {
				ids = append(ids, id.String())
			}
			q = q.Where("?TableAlias.id IN (?)", bun.In(ids))
		}
		if filter.WithCampaign {
			q = q.Relation("Campaign")
		}
		if filter.NewestFirst {
			q = q.Order("created_at DESC")
		} else {
			q = q.Order("created_at ASC")
		}
		return q
	}))
	if err != nil {
		return nil, fmt.Errorf("content piece repository error: %w", err)
	}
	return records, nil
}

func (r *BunContentRepository) Update(ctx context.Context, record *ContentPiece) (*ContentPiece, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"text",
			"state",
			"ai_metadata",
			"history",
			"review_notes",
			"reviewed_by",
			"reviewed_at",
			"edited_by",
			"edited_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "content piece", record.ID.String())
	}
	return updated, nil
}

func (r *BunContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &ContentPiece{ID: id}); err != nil {
		return mapRepositoryError(err, "content piece", id.String())
	}
	return nil
}

type BunCampaignRepository struct {
	repo repository.Repository[*Campaign]
}

func NewBunCampaignRepository(db *bun.DB) *BunCampaignRepository {
	return NewBunCampaignRepositoryWithCache(db, nil, nil)
}

// NewBunCampaignRepositoryWithCache constructs a CampaignRepository backed by
// bun with optional caching. Campaign rows are read-heavy, so they are the
// primary beneficiary of the cache wrap.
func NewBunCampaignRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunCampaignRepository {
	base := NewCampaignModelRepository(db)
	return &BunCampaignRepository{repo: wrapWithCache(base, cacheService, keySerializer)}
}

func (r *BunCampaignRepository) Create(ctx context.Context, record *Campaign) (*Campaign, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "campaign", id.String())
	}
	return result, nil
}

func (r *BunCampaignRepository) GetBySlug(ctx context.Context, slug string) (*Campaign, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "campaign", slug)
	}
	return result, nil
}

func (r *BunCampaignRepository) List(ctx context.Context) ([]*Campaign, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at ASC")
	}))
	if err != nil {
		return nil, fmt.Errorf("campaign repository error: %w", err)
	}
	return records, nil
}

type BunReviewActionRepository struct {
	repo repository.Repository[*ReviewAction]
}

func NewBunReviewActionRepository(db *bun.DB) *BunReviewActionRepository {
	base := NewReviewActionModelRepository(db)
	return &BunReviewActionRepository{repo: base}
}

func (r *BunReviewActionRepository) Create(ctx context.Context, record *ReviewAction) (*ReviewAction, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunReviewActionRepository) ListByContent(ctx context.Context, contentID uuid.UUID) ([]*ReviewAction, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.content_id = ?", contentID.String()).Order("created_at ASC")
	}))
	if err != nil {
		return nil, fmt.Errorf("review action repository error: %w", err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
