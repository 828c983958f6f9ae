package repository

import (
	"context"
	"time"

	"bookit/internal/domain"

	"gorm.io/gorm"
)

type PromoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) *PromoRepository {
	return &PromoRepository{db: db}
}

// FindActive looks up an active code whose validity window contains now.
// Both bounds are checked.
func (r *PromoRepository) FindActive(ctx context.Context, code string, now time.Time) (*domain.PromoCode, error) {
	var p domain.PromoCode
	tx := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ? AND valid_from <= ? AND valid_until >= ?",
			code, true, now, now).
		First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// IncrementUsage bumps usage_count by one only while the code is still
// redeemable. Returns false when the guard fails, which under concurrency
// means another validation took the last use.
func (r *PromoRepository) IncrementUsage(ctx context.Context, code string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.PromoCode{}).
		Where("code = ? AND is_active = ? AND valid_from <= ? AND valid_until >= ?",
			code, true, now, now).
		Where("usage_limit IS NULL OR usage_count < usage_limit").
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PromoRepository) Create(ctx context.Context, p *domain.PromoCode) error {
	return r.db.WithContext(ctx).Create(p).Error
}
