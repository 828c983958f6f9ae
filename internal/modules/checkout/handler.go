package checkout

import (
	"errors"
	"log"
	"net/http"

	"bookit/internal/pkg/response"
	"bookit/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateDraft handles POST /api/checkout/draft
func (h *Handler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.service.CreateDraft(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrExperienceNotFound):
			response.Message(c, http.StatusNotFound, "Experience not found")
		case errors.Is(err, ErrDateUnavailable):
			response.Message(c, http.StatusBadRequest, "Selected date not available")
		case errors.Is(err, ErrTimeUnavailable):
			response.Message(c, http.StatusBadRequest, "Selected time not available")
		default:
			log.Printf("create draft failed: %v", err)
			response.Message(c, http.StatusInternalServerError, "Failed to create draft")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Draft created",
		"draftId": draft.ID,
		"draft":   draft,
	})
}

// GetDraft handles GET /api/checkout/draft/:id
func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.service.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			response.Message(c, http.StatusNotFound, "Draft not found or expired")
			return
		}
		log.Printf("get draft failed: %v", err)
		response.Message(c, http.StatusInternalServerError, "Failed to fetch draft")
		return
	}

	c.JSON(http.StatusOK, draft)
}

// Quote handles POST /api/checkout/quote
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	c.JSON(http.StatusOK, h.service.Quote(req))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	checkout := r.Group("/checkout")
	{
		checkout.POST("/draft", h.CreateDraft)
		checkout.GET("/draft/:id", h.GetDraft)
		checkout.POST("/quote", h.Quote)
	}
}
