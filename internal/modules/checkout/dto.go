package checkout

type CreateDraftRequest struct {
	ExperienceID int64  `json:"experienceId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,gte=1"`
}

type QuoteRequest struct {
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,gte=1"`
	Discount float64 `json:"discount" binding:"gte=0"`
	Type     string  `json:"type" binding:"omitempty,oneof=percentage fixed"`
}
