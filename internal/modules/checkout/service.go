package checkout

import (
	"context"
	"errors"
	"time"

	"bookit/internal/domain"
	"bookit/internal/pkg/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	experiences ExperienceRepository
	drafts      DraftStore
	now         func() time.Time
}

func NewService(experiences ExperienceRepository, drafts DraftStore) *Service {
	return &Service{experiences: experiences, drafts: drafts, now: time.Now}
}

// CreateDraft validates the selection against the experience's slots and
// stages it server-side with an expiry. A draft holds no reservation:
// capacity is only consumed when the booking is created.
func (s *Service) CreateDraft(ctx context.Context, req CreateDraftRequest) (*domain.CheckoutDraft, error) {
	exp, err := s.experiences.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	day, ok := parseDay(req.Date)
	if !ok {
		return nil, ErrDateUnavailable
	}

	slot, err := s.experiences.FindSlotByDay(ctx, exp.ID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDateUnavailable
		}
		return nil, err
	}

	if !slot.HasTime(req.Time) {
		return nil, ErrTimeUnavailable
	}

	quote := pricing.NewQuote(exp.Price, req.Quantity, 0, "")

	draft := &domain.CheckoutDraft{
		ID:           uuid.NewString(),
		ExperienceID: exp.ID,
		Title:        exp.Title,
		Date:         day.Format("2006-01-02"),
		Time:         req.Time,
		Quantity:     req.Quantity,
		Price:        exp.Price,
		Subtotal:     quote.Subtotal,
		Taxes:        quote.Taxes,
		Total:        quote.Total,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (*domain.CheckoutDraft, error) {
	return s.drafts.Get(ctx, id)
}

func (s *Service) Quote(req QuoteRequest) pricing.Quote {
	return pricing.NewQuote(req.Price, req.Quantity, req.Discount, domain.DiscountType(req.Type))
}

func parseDay(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return domain.DayStart(t), true
		}
	}
	return time.Time{}, false
}
