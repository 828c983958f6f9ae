package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookit/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// InsufficientSpotsError is returned when the conditional decrement finds
// fewer spots than requested. Remaining carries the live count for the
// client-facing message.
type InsufficientSpotsError struct {
	Remaining int
}

func (e *InsufficientSpotsError) Error() string {
	return fmt.Sprintf("only %d spots available", e.Remaining)
}

// CreateConfirmed inserts the booking and decrements the slot's capacity in
// one transaction. The decrement is a single conditional UPDATE guarded by
// available_spots >= quantity, so concurrent requests for the last spots
// serialize at the database and can never drive the counter negative. If
// either step fails the transaction rolls back and no partial state remains.
func (r *BookingRepository) CreateConfirmed(ctx context.Context, b *domain.Booking, slotID int64) (int, error) {
	var remaining int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Slot{}).
			Where("id = ? AND available_spots >= ?", slotID, b.Quantity).
			UpdateColumn("available_spots", gorm.Expr("available_spots - ?", b.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var slot domain.Slot
			if err := tx.First(&slot, slotID).Error; err != nil {
				return err
			}
			return &InsufficientSpotsError{Remaining: slot.AvailableSpots}
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		var slot domain.Slot
		if err := tx.First(&slot, slotID).Error; err != nil {
			return err
		}
		remaining = slot.AvailableSpots
		return nil
	})

	return remaining, err
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Where("booking_id = ?", ref).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// IsDuplicateKey reports whether err is a unique-constraint violation, for
// either backend.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
