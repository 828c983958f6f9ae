package catalog

// ExperienceSummary is the list projection: no slots, no full description.
type ExperienceSummary struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
}
