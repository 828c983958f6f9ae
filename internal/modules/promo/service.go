package promo

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookit/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	promos PromoRepository
	now    func() time.Time
}

func NewService(promos PromoRepository) *Service {
	return &Service{promos: promos, now: time.Now}
}

// Validate checks a code and, when eligible, consumes one use. Redemption
// happens at validation time: every successful call increments the usage
// counter, matching the checkout flow that only validates once per purchase.
// Rejected codes are never mutated.
func (s *Service) Validate(ctx context.Context, code string) (*domain.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}

	now := s.now()

	p, err := s.promos.FindActive(ctx, code, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrExpired
		}
		return nil, err
	}

	if p.LimitReached() {
		return nil, ErrLimitExceeded
	}

	// The increment re-checks the limit, so two concurrent validations of the
	// last remaining use cannot both succeed.
	ok, err := s.promos.IncrementUsage(ctx, code, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLimitExceeded
	}

	p.UsageCount++
	return p, nil
}
