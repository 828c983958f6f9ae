package domain

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID         int64        `json:"id" gorm:"primaryKey"`
	Code       string       `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Discount   float64      `json:"discount" validate:"gte=0"`
	Type       DiscountType `json:"type" gorm:"not null"`
	IsActive   bool         `json:"isActive" gorm:"default:true"`
	ValidFrom  time.Time    `json:"validFrom"`
	ValidUntil time.Time    `json:"validUntil" gorm:"not null"`
	UsageLimit *int         `json:"usageLimit,omitempty"`
	UsageCount int          `json:"usageCount" gorm:"default:0" validate:"gte=0"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// LimitReached reports whether the usage cap is set and already consumed.
func (p *PromoCode) LimitReached() bool {
	return p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit
}
