package checkout

import (
	"context"
	"time"

	"bookit/internal/domain"
)

// ExperienceRepository defines the catalog lookups draft creation needs
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
	FindSlotByDay(ctx context.Context, experienceID int64, day time.Time) (*domain.Slot, error)
}

// DraftStore defines the TTL'd draft persistence
type DraftStore interface {
	Save(ctx context.Context, d *domain.CheckoutDraft) error
	Get(ctx context.Context, id string) (*domain.CheckoutDraft, error)
}
