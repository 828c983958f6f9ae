package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookit/internal/database"
	"bookit/internal/middleware"
	"bookit/internal/modules/booking"
	"bookit/internal/modules/catalog"
	"bookit/internal/modules/checkout"
	"bookit/internal/modules/promo"
	"bookit/internal/repository"
)

const draftTTL = 30 * time.Minute

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "bookit.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	experienceRepo := repository.NewExperienceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	promoRepo := repository.NewPromoRepository(db)

	catalogService := catalog.NewService(experienceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, experienceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	promoService := promo.NewService(promoRepo)
	promoHandler := promo.NewHandler(promoService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		promoHandler.RegisterRoutes(api)

		// checkout drafts need redis; the rest of the API works without it
		if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
			rdb, err := database.ConnectRedis(redisURL)
			if err != nil {
				log.Fatal(err)
			}
			draftRepo := repository.NewDraftRepository(rdb, draftTTL)
			checkoutService := checkout.NewService(experienceRepo, draftRepo)
			checkout.NewHandler(checkoutService).RegisterRoutes(api)
		} else {
			log.Println("REDIS_URL not set, checkout drafts disabled")
		}

		api.GET("/health", func(c *gin.Context) {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "DEGRADED",
					"message": "Database unavailable",
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"message": "BookIt API is running",
			})
		})
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
