package domain

import "time"

type Experience struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"not null" validate:"required"`
	Location        string    `json:"location" gorm:"not null" validate:"required"`
	Price           float64   `json:"price" validate:"gte=0"`
	OriginalPrice   *float64  `json:"originalPrice,omitempty"`
	Image           string    `json:"image"`
	Description     string    `json:"description" gorm:"type:text"`
	FullDescription string    `json:"fullDescription" gorm:"type:text"`
	Includes        []string  `json:"includes" gorm:"serializer:json"`
	Slots           []Slot    `json:"slots,omitempty" gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Slot is one bookable calendar day of an experience. All times on the day
// share a single capacity counter.
type Slot struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ExperienceID   int64     `json:"-" gorm:"index;not null"`
	Date           time.Time `json:"date" gorm:"not null"`
	Times          []string  `json:"times" gorm:"serializer:json"`
	AvailableSpots int       `json:"availableSpots" gorm:"not null" validate:"gte=0"`
}

func (s *Slot) HasTime(t string) bool {
	for _, v := range s.Times {
		if v == t {
			return true
		}
	}
	return false
}

// DayStart truncates t to UTC midnight. Slot matching is calendar-day
// equality, never instant equality.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
