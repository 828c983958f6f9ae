package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingPending   BookingStatus = "pending"
)

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	BookingID     string        `json:"bookingId" gorm:"uniqueIndex;not null"`
	ExperienceID  int64         `json:"experienceId" gorm:"index;not null" validate:"required"`
	CustomerName  string        `json:"customerName" gorm:"not null" validate:"required"`
	CustomerEmail string        `json:"customerEmail" gorm:"not null" validate:"required,email"`
	Date          time.Time     `json:"date" gorm:"not null"`
	Time          string        `json:"time" gorm:"not null" validate:"required"`
	Quantity      int           `json:"quantity" gorm:"not null" validate:"required,gte=1"`
	Price         float64       `json:"price" validate:"gte=0"`
	PromoCode     string        `json:"promoCode,omitempty"`
	PromoDiscount float64       `json:"promoDiscount" validate:"gte=0"`
	FinalTotal    float64       `json:"finalTotal" validate:"gte=0"`
	Status        BookingStatus `json:"status" gorm:"default:confirmed"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Experience *Experience `json:"experience,omitempty" gorm:"foreignKey:ExperienceID"`
}
