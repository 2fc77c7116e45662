package content

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewCampaignModelRepository(db *bun.DB) repository.Repository[*Campaign] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Campaign]{
		NewRecord: func() *Campaign { return &Campaign{} },
		GetID: func(c *Campaign) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Campaign, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *Campaign) string {
			return c.Slug
		},
	})
}

func NewContentPieceModelRepository(db *bun.DB) repository.Repository[*ContentPiece] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ContentPiece]{
		NewRecord: func() *ContentPiece { return &ContentPiece{} },
		GetID: func(cp *ContentPiece) uuid.UUID {
			return cp.ID
		},
		SetID: func(cp *ContentPiece, id uuid.UUID) {
			cp.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(cp *ContentPiece) string {
			if cp == nil {
				return ""
			}
			return cp.ID.String()
		},
	})
}

func NewReviewActionModelRepository(db *bun.DB) repository.Repository[*ReviewAction] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ReviewAction]{
		NewRecord: func() *ReviewAction { return &ReviewAction{} },
		GetID: func(ra *ReviewAction) uuid.UUID {
			return ra.ID
		},
		SetID: func(ra *ReviewAction, id uuid.UUID) {
			ra.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(ra *ReviewAction) string {
			if ra == nil {
				return ""
			}
			return ra.ID.String()
		},
	})
}
