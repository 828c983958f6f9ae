package promo

import (
	"context"
	"time"

	"bookit/internal/domain"
)

// PromoRepository defines promo lookups and the guarded usage increment
type PromoRepository interface {
	FindActive(ctx context.Context, code string, now time.Time) (*domain.PromoCode, error)
	IncrementUsage(ctx context.Context, code string, now time.Time) (bool, error)
}
