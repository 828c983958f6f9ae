package promo

type ValidateRequest struct {
	Code string `json:"code"`
}
