package content

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryContentRepository is an in-memory ContentRepository guarded by a
// mutex. Records are cloned on the way in and out so callers never share
// storage-owned structs.
type MemoryContentRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*ContentPiece
}

// NewMemoryContentRepository builds an empty in-memory content repository.
func NewMemoryContentRepository() *MemoryContentRepository {
	return &MemoryContentRepository{records: map[uuid.UUID]*ContentPiece{}}
}

func (r *MemoryContentRepository) Create(_ context.Context, record *ContentPiece) (*ContentPiece, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneContentPiece(record)
	r.records[clone.ID] = clone
	return cloneContentPiece(clone), nil
}

func (r *MemoryContentRepository) GetByID(_ context.Context, id uuid.UUID) (*ContentPiece, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "content piece", Key: id.String()}
	}
	return cloneContentPiece(record), nil
}

func (r *MemoryContentRepository) List(_ context.Context, filter ContentFilter) ([]*ContentPiece, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var wanted map[uuid.UUID]struct{}
	if len(filter.IDs) > 0 {
		wanted = make(map[uuid.UUID]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			wanted[id] = struct{}{}
		}
	}

	out := make([]*ContentPiece, 0, len(r.records))
	for _, record := range r.records {
		if filter.State != nil && record.State != *filter.State {
			continue
		}
		if filter.CampaignID != nil && record.CampaignID != *filter.CampaignID {
			continue
		}
		if wanted != nil {
			if _, ok := wanted[record.ID]; !ok {
				continue
			}
		}
		out = append(out, cloneContentPiece(record))
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.NewestFirst {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
		} else if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	return out, nil
}

func (r *MemoryContentRepository) Update(_ context.Context, record *ContentPiece) (*ContentPiece, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "content piece", Key: record.ID.String()}
	}
	clone := cloneContentPiece(record)
	r.records[clone.ID] = clone
	return cloneContentPiece(clone), nil
}

func (r *MemoryContentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return &NotFoundError{Resource: "content piece", Key: id.String()}
	}
	delete(r.records, id)
	return nil
}

// MemoryCampaignRepository is an in-memory CampaignRepository guarded by a mutex.
type MemoryCampaignRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Campaign
}

// NewMemoryCampaignRepository builds an empty in-memory campaign repository.
func NewMemoryCampaignRepository() *MemoryCampaignRepository {
	return &MemoryCampaignRepository{records: map[uuid.UUID]*Campaign{}}
}

func (r *MemoryCampaignRepository) Create(_ context.Context, record *Campaign) (*Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneCampaign(record)
	r.records[clone.ID] = clone
	return cloneCampaign(clone), nil
}

func (r *MemoryCampaignRepository) GetByID(_ context.Context, id uuid.UUID) (*Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "campaign", Key: id.String()}
	}
	return cloneCampaign(record), nil
}

func (r *MemoryCampaignRepository) List(_ context.Context) ([]*Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Campaign, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, cloneCampaign(record))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// MemoryReviewActionRepository is an in-memory ReviewActionRepository. Rows
// are append-only; there is no update or delete surface.
type MemoryReviewActionRepository struct {
	mu      sync.RWMutex
	records []*ReviewAction
}

// NewMemoryReviewActionRepository builds an empty in-memory review log.
func NewMemoryReviewActionRepository() *MemoryReviewActionRepository {
	return &MemoryReviewActionRepository{}
}

func (r *MemoryReviewActionRepository) Create(_ context.Context, record *ReviewAction) (*ReviewAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneReviewAction(record)
	r.records = append(r.records, clone)
	return cloneReviewAction(clone), nil
}

func (r *MemoryReviewActionRepository) ListByContent(_ context.Context, contentID uuid.UUID) ([]*ReviewAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*ReviewAction{}
	for _, record := range r.records {
		if record.ContentID == contentID {
			out = append(out, cloneReviewAction(record))
		}
	}
	return out, nil
}

func cloneContentPiece(in *ContentPiece) *ContentPiece {
	if in == nil {
		return nil
	}
	out := *in
	out.AIMetadata = cloneMap(in.AIMetadata)
	if in.History != nil {
		out.History = append(json.RawMessage(nil), in.History...)
	}
	out.ReviewNotes = cloneStringPtr(in.ReviewNotes)
	out.ReviewedBy = cloneStringPtr(in.ReviewedBy)
	out.EditedBy = cloneStringPtr(in.EditedBy)
	out.ReviewedAt = cloneTimePtr(in.ReviewedAt)
	out.EditedAt = cloneTimePtr(in.EditedAt)
	out.Campaign = nil
	out.Reviews = nil
	return &out
}

func cloneCampaign(in *Campaign) *Campaign {
	if in == nil {
		return nil
	}
	out := *in
	out.Description = cloneStringPtr(in.Description)
	out.DefaultInstructions = cloneStringPtr(in.DefaultInstructions)
	out.Contents = nil
	return &out
}

func cloneReviewAction(in *ReviewAction) *ReviewAction {
	if in == nil {
		return nil
	}
	out := *in
	out.Comment = cloneStringPtr(in.Comment)
	out.Content = nil
	return &out
}

func cloneStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneTimePtr(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
