package booking

type CreateBookingRequest struct {
	ExperienceID  int64   `json:"experienceId" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required"`
	CustomerEmail string  `json:"customerEmail" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Time          string  `json:"time" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gte=1"`
	Price         float64 `json:"price" binding:"gte=0"`
	PromoCode     string  `json:"promoCode"`
	PromoDiscount float64 `json:"promoDiscount" binding:"gte=0"`
	FinalTotal    float64 `json:"finalTotal" binding:"gte=0"`
}
