package promo

import (
	"errors"
	"log"
	"net/http"

	"bookit/internal/monitoring"
	"bookit/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ValidatePromoCode handles POST /api/promo/validate
func (h *Handler) ValidatePromoCode(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		monitoring.TrackPromoValidation("rejected")
		response.Message(c, http.StatusBadRequest, "Promo code is required")
		return
	}

	promo, err := h.service.Validate(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeRequired):
			monitoring.TrackPromoValidation("rejected")
			response.Message(c, http.StatusBadRequest, "Promo code is required")
		case errors.Is(err, ErrNotFoundOrExpired):
			monitoring.TrackPromoValidation("rejected")
			response.Message(c, http.StatusBadRequest, "Invalid or expired promo code")
		case errors.Is(err, ErrLimitExceeded):
			monitoring.TrackPromoValidation("limit_exceeded")
			response.Message(c, http.StatusBadRequest, "Promo code usage limit exceeded")
		default:
			monitoring.TrackPromoValidation("error")
			log.Printf("validate promo failed: %v", err)
			response.Message(c, http.StatusInternalServerError, "Failed to validate promo code")
		}
		return
	}

	monitoring.TrackPromoValidation("valid")

	c.JSON(http.StatusOK, gin.H{
		"message":  "Promo code is valid",
		"discount": promo.Discount,
		"type":     promo.Type,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/promo/validate", h.ValidatePromoCode)
}
