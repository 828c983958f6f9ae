package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookit/internal/domain"
	"bookit/internal/pkg/ref"
	"bookit/internal/repository"

	"gorm.io/gorm"
)

// maxRefAttempts bounds regenerate-and-retry on booking reference collisions.
const maxRefAttempts = 3

type Service struct {
	bookings    BookingRepository
	experiences ExperienceRepository
}

func NewService(bookings BookingRepository, experiences ExperienceRepository) *Service {
	return &Service{bookings: bookings, experiences: experiences}
}

// CreateBooking verifies the requested slot and time, then inserts the
// booking and decrements the slot's capacity atomically. On success it
// returns the booking and the slot's remaining spots.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, int, error) {
	exp, err := s.experiences.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrExperienceNotFound
		}
		return nil, 0, err
	}

	day, ok := parseDay(req.Date)
	if !ok {
		return nil, 0, ErrDateUnavailable
	}

	slot, err := s.experiences.FindSlotByDay(ctx, exp.ID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrDateUnavailable
		}
		return nil, 0, err
	}

	if !slot.HasTime(req.Time) {
		return nil, 0, ErrTimeUnavailable
	}

	b := &domain.Booking{
		BookingID:     ref.NewBookingRef(),
		ExperienceID:  exp.ID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		Date:          day,
		Time:          req.Time,
		Quantity:      req.Quantity,
		Price:         req.Price,
		PromoCode:     strings.ToUpper(strings.TrimSpace(req.PromoCode)),
		PromoDiscount: req.PromoDiscount,
		FinalTotal:    req.FinalTotal,
		Status:        domain.BookingConfirmed,
	}

	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		remaining, err := s.bookings.CreateConfirmed(ctx, b, slot.ID)
		if err == nil {
			return b, remaining, nil
		}

		var capErr *repository.InsufficientSpotsError
		if errors.As(err, &capErr) {
			return nil, 0, &CapacityError{Remaining: capErr.Remaining}
		}

		if repository.IsDuplicateKey(err) {
			b.BookingID = ref.NewBookingRef()
			continue
		}

		return nil, 0, err
	}

	return nil, 0, ErrReferenceConflict
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

// parseDay accepts RFC 3339 instants or plain calendar dates and normalizes
// to UTC midnight.
func parseDay(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return domain.DayStart(t), true
		}
	}
	return time.Time{}, false
}
