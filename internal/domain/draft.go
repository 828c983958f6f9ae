package domain

import "time"

// CheckoutDraft is the server-side replacement for the cart hand-off between
// the detail and checkout views. Drafts are short-lived and expire on their
// own; completing a booking does not require one.
type CheckoutDraft struct {
	ID           string    `json:"draftId"`
	ExperienceID int64     `json:"experienceId"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Subtotal     float64   `json:"subtotal"`
	Taxes        float64   `json:"taxes"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}
