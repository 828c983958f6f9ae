package booking

import (
	"context"
	"time"

	"bookit/internal/domain"
)

// ExperienceRepository defines the catalog lookups booking creation needs
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
	FindSlotByDay(ctx context.Context, experienceID int64, day time.Time) (*domain.Slot, error)
}

// BookingRepository defines the booking write path
type BookingRepository interface {
	CreateConfirmed(ctx context.Context, b *domain.Booking, slotID int64) (int, error)
	GetByReference(ctx context.Context, ref string) (*domain.Booking, error)
}
