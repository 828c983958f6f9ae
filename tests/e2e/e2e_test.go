package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookit/internal/database"
	"bookit/internal/domain"
	"bookit/internal/middleware"
	"bookit/internal/modules/booking"
	"bookit/internal/modules/catalog"
	"bookit/internal/modules/promo"
	"bookit/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.Experience{},
		&domain.Slot{},
		&domain.Booking{},
		&domain.PromoCode{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model), fmt.Sprintf("Failed to migrate %T", model))
	}

	experienceRepo := repository.NewExperienceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	promoRepo := repository.NewPromoRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(experienceRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, experienceRepo))
	promoHandler := promo.NewHandler(promo.NewService(promoRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	catalogHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)
	promoHandler.RegisterRoutes(api)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "BookIt API is running"})
	})

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) seedExperience(t *testing.T, spots int) *domain.Experience {
	t.Helper()

	exp := &domain.Experience{
		Title:           "Kayaking Adventure",
		Location:        "Udupi",
		Price:           999,
		Image:           "https://example.com/kayak.jpg",
		Description:     "Guided kayaking through mangroves.",
		FullDescription: "Full day guided kayaking with safety gear.",
		Includes:        []string{"Certified instructor", "Safety equipment"},
		Slots: []domain.Slot{
			{
				Date:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Times:          []string{"10:00 am"},
				AvailableSpots: spots,
			},
			{
				Date:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Times:          []string{"10:00 am", "02:00 pm"},
				AvailableSpots: 10,
			},
		},
	}
	require.NoError(t, s.db.Create(exp).Error)
	return exp
}

func (s *E2ETestSuite) seedPromo(t *testing.T, code string, usageCount, usageLimit int) {
	t.Helper()

	now := time.Now()
	require.NoError(t, s.db.Create(&domain.PromoCode{
		Code:       code,
		Discount:   10,
		Type:       domain.DiscountPercentage,
		IsActive:   true,
		ValidFrom:  now.AddDate(0, -1, 0),
		ValidUntil: now.AddDate(0, 1, 0),
		UsageLimit: &usageLimit,
		UsageCount: usageCount,
	}).Error)
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if len(w.Body.Bytes()) > 0 && strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func bookingPayload(expID int64) map[string]interface{} {
	return map[string]interface{}{
		"experienceId":  expID,
		"customerName":  "Asha Rao",
		"customerEmail": "asha@example.com",
		"date":          "2025-06-01",
		"time":          "10:00 am",
		"quantity":      1,
		"price":         999,
		"promoDiscount": 0,
		"finalTotal":    1179,
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := setupTestSuite(t)

	w, body := s.request(t, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "BookIt API is running", body["message"])
}

func TestListExperiences(t *testing.T) {
	s := setupTestSuite(t)
	s.seedExperience(t, 5)

	w, _ := s.request(t, http.MethodGet, "/api/experiences", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Kayaking Adventure", list[0]["title"])
	assert.NotContains(t, list[0], "slots")
}

func TestGetExperienceByID(t *testing.T) {
	s := setupTestSuite(t)
	exp := s.seedExperience(t, 5)

	w, body := s.request(t, http.MethodGet, fmt.Sprintf("/api/experiences/%d", exp.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kayaking Adventure", body["title"])
	slots, ok := body["slots"].([]interface{})
	require.True(t, ok)
	assert.Len(t, slots, 2)

	w, body = s.request(t, http.MethodGet, "/api/experiences/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", body["message"])
}

func TestCreateBookingFlow(t *testing.T) {
	s := setupTestSuite(t)
	exp := s.seedExperience(t, 5)

	w, body := s.request(t, http.MethodPost, "/api/bookings", bookingPayload(exp.ID))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Booking created successfully", body["message"])
	assert.Equal(t, float64(4), body["remainingSpots"])

	refID, ok := body["bookingId"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(refID, "BK"))

	// the booking is retrievable by its reference
	w, body = s.request(t, http.MethodGet, "/api/bookings/"+refID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, "asha@example.com", body["customerEmail"])
}

func TestCreateBooking_LastSpotNotOversold(t *testing.T) {
	s := setupTestSuite(t)
	exp := s.seedExperience(t, 1)

	w, body := s.request(t, http.MethodPost, "/api/bookings", bookingPayload(exp.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), body["remainingSpots"])

	w, body = s.request(t, http.MethodPost, "/api/bookings", bookingPayload(exp.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only 0 spots available for this time slot", body["message"])

	// capacity never goes negative
	var slot domain.Slot
	require.NoError(t, s.db.Where("experience_id = ?", exp.ID).Order("date ASC").First(&slot).Error)
	assert.Equal(t, 0, slot.AvailableSpots)
}

func TestCreateBooking_Rejections(t *testing.T) {
	s := setupTestSuite(t)
	exp := s.seedExperience(t, 5)

	payload := bookingPayload(exp.ID)
	payload["experienceId"] = int64(9999)
	w, body := s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", body["message"])

	payload = bookingPayload(exp.ID)
	payload["date"] = "2025-08-20"
	w, body = s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Selected date not available", body["message"])

	payload = bookingPayload(exp.ID)
	payload["time"] = "09:00 pm"
	w, body = s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Selected time not available", body["message"])

	payload = bookingPayload(exp.ID)
	payload["quantity"] = 50
	w, body = s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only 5 spots available for this time slot", body["message"])

	// no booking rows and no decrement from any rejection
	var count int64
	require.NoError(t, s.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var slot domain.Slot
	require.NoError(t, s.db.Where("experience_id = ?", exp.ID).Order("date ASC").First(&slot).Error)
	assert.Equal(t, 5, slot.AvailableSpots)
}

func TestCreateBooking_InputValidation(t *testing.T) {
	s := setupTestSuite(t)
	exp := s.seedExperience(t, 5)

	payload := bookingPayload(exp.ID)
	payload["customerName"] = "X"
	w, body := s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "Customer name")

	payload = bookingPayload(exp.ID)
	payload["customerName"] = "R2-D2 99"
	w, _ = s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = bookingPayload(exp.ID)
	payload["customerEmail"] = "not-an-email"
	w, body = s.request(t, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid customer email is required", body["message"])
}

func TestPromoValidationFlow(t *testing.T) {
	s := setupTestSuite(t)
	s.seedPromo(t, "SAVE10", 99, 100)

	// last remaining use succeeds and consumes the counter
	w, body := s.request(t, http.MethodPost, "/api/promo/validate", map[string]string{"code": "save10"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Promo code is valid", body["message"])
	assert.Equal(t, float64(10), body["discount"])
	assert.Equal(t, "percentage", body["type"])

	var p domain.PromoCode
	require.NoError(t, s.db.Where("code = ?", "SAVE10").First(&p).Error)
	assert.Equal(t, 100, p.UsageCount)

	// the next validation hits the cap
	w, body = s.request(t, http.MethodPost, "/api/promo/validate", map[string]string{"code": "SAVE10"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Promo code usage limit exceeded", body["message"])

	// unknown codes are rejected without any mutation
	w, body = s.request(t, http.MethodPost, "/api/promo/validate", map[string]string{"code": "NOPE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired promo code", body["message"])

	// missing code
	w, body = s.request(t, http.MethodPost, "/api/promo/validate", map[string]string{"code": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Promo code is required", body["message"])
}
