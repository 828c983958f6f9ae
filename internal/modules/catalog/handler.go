package catalog

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookit/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetExperiences handles GET /api/experiences
func (h *Handler) GetExperiences(c *gin.Context) {
	experiences, err := h.service.ListExperiences(c.Request.Context())
	if err != nil {
		log.Printf("list experiences failed: %v", err)
		response.Message(c, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}

	c.JSON(http.StatusOK, experiences)
}

// GetExperienceByID handles GET /api/experiences/:id
func (h *Handler) GetExperienceByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// a malformed id cannot resolve to anything
		response.Message(c, http.StatusNotFound, "Experience not found")
		return
	}

	experience, err := h.service.GetExperience(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Message(c, http.StatusNotFound, "Experience not found")
			return
		}
		log.Printf("get experience %d failed: %v", id, err)
		response.Message(c, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}

	c.JSON(http.StatusOK, experience)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	experiences := r.Group("/experiences")
	{
		experiences.GET("", h.GetExperiences)
		experiences.GET("/:id", h.GetExperienceByID)
	}
}
