package promo

import "errors"

var (
	ErrCodeRequired      = errors.New("promo code is required")
	ErrNotFoundOrExpired = errors.New("invalid or expired promo code")
	ErrLimitExceeded     = errors.New("promo code usage limit exceeded")
)
