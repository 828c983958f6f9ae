package repository

import (
	"context"
	"time"

	"bookit/internal/domain"

	"gorm.io/gorm"
)

type ExperienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// List returns summary projections only, newest first. Slots are not loaded.
func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	var out []domain.Experience
	tx := r.db.WithContext(ctx).
		Select("id", "title", "location", "price", "original_price", "image", "description").
		Order("created_at DESC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	var exp domain.Experience
	tx := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB { return db.Order("slots.date ASC") }).
		First(&exp, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &exp, nil
}

// FindSlotByDay matches a slot on UTC calendar-day equality. Returns
// gorm.ErrRecordNotFound when the experience offers nothing on that day.
func (r *ExperienceRepository) FindSlotByDay(ctx context.Context, experienceID int64, day time.Time) (*domain.Slot, error) {
	start := domain.DayStart(day)
	end := start.Add(24 * time.Hour)

	var slot domain.Slot
	tx := r.db.WithContext(ctx).
		Where("experience_id = ? AND date >= ? AND date < ?", experienceID, start, end).
		First(&slot)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &slot, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, exp *domain.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}
