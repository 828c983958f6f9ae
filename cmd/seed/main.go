package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"bookit/internal/database"
	"bookit/internal/domain"
)

var timeSlots = []string{
	"06:00 am",
	"08:00 am",
	"10:00 am",
	"12:00 pm",
	"02:00 pm",
	"04:00 pm",
}

// generateSlots builds six rolling calendar days starting today, each with
// the full time list and a random capacity.
func generateSlots() []domain.Slot {
	today := domain.DayStart(time.Now())

	slots := make([]domain.Slot, 0, 6)
	for i := 0; i < 6; i++ {
		slots = append(slots, domain.Slot{
			Date:           today.AddDate(0, 0, i),
			Times:          append([]string(nil), timeSlots...),
			AvailableSpots: rand.Intn(20),
		})
	}
	return slots
}

func intPtr(v int) *int { return &v }

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "bookit.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Experience{},
		&domain.Slot{},
		&domain.Booking{},
		&domain.PromoCode{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM slots")
	db.Exec("DELETE FROM experiences")
	db.Exec("DELETE FROM promo_codes")

	log.Println("Creating experiences...")

	experiences := []domain.Experience{
		{
			Title:           "Kayaking Adventure",
			Location:        "Udupi",
			Price:           999,
			Image:           "https://images.unsplash.com/photo-1518837695005-2083093ee35b?w=500&h=300&fit=crop",
			Description:     "Experience thrilling kayaking adventures through pristine waters with professional guides and safety equipment provided.",
			FullDescription: "Immerse yourself in nature as you kayak through beautiful mangroves, guided by certified professionals ensuring complete safety and unforgettable memories.",
			Includes:        []string{"Certified instructor", "Safety equipment", "Snacks", "Photo session"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Coorg Coffee Trail",
			Location:        "Coorg",
			Price:           1499,
			Image:           "https://images.unsplash.com/photo-1497515114629-f71d768fd07c?w=500&h=300&fit=crop",
			Description:     "Explore authentic coffee production from bean to brew in the lush plantations of beautiful Coorg region.",
			FullDescription: "A comprehensive learning tour inside sprawling coffee plantations with expert guides explaining the entire coffee making process from cultivation to brewing.",
			Includes:        []string{"Tasting session", "Snacks", "Local guide", "Transport inside plantation"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Boat Cruise Sunset Ride",
			Location:        "Bandipur",
			Price:           999,
			Image:           "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500&h=300&fit=crop",
			Description:     "Enjoy a peaceful evening cruise with stunning sunset views and opportunities for wildlife spotting in nature.",
			FullDescription: "Experience serene boat cruising with spectacular sunset views, wildlife observation opportunities, refreshing drinks and gentle evening breeze for complete relaxation.",
			Includes:        []string{"Guide", "Refreshments", "Life jackets", "Binoculars"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Bungee Jumping Experience",
			Location:        "Mysore",
			Price:           1999,
			Image:           "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500&h=300&fit=crop",
			Description:     "Feel the ultimate adrenaline rush with safe bungee jumping under international safety standards and professional supervision.",
			FullDescription: "Experience the thrill of bungee jumping with internationally certified safety equipment, professional trainers and comprehensive safety measures for maximum adventure.",
			Includes:        []string{"Video recording", "Certified trainer", "Safety harness", "First-aid support"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Scuba Diving",
			Location:        "Goa",
			Price:           3999,
			Image:           "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=500&h=300&fit=crop",
			Description:     "Discover amazing underwater marine life and coral reefs with professional diving instructors and complete equipment.",
			FullDescription: "Professional scuba diving session designed for beginners with certified instructors, complete equipment and underwater photography to capture memorable marine experiences.",
			Includes:        []string{"Underwater photos", "Scuba gear", "Boat ride", "Snacks"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Hot Air Balloon Ride",
			Location:        "Jaipur",
			Price:           5999,
			Image:           "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=500&h=300&fit=crop",
			Description:     "Soar above majestic desert landscapes and historic palaces in a romantic hot air balloon adventure experience.",
			FullDescription: "Experience breathtaking aerial views of Rajasthan's desert landscapes and magnificent palaces during a romantic sunrise hot air balloon ride with refreshments.",
			Includes:        []string{"Pilot guide", "Safety equipment", "Tea & coffee"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Camel Safari",
			Location:        "Jaisalmer",
			Price:           1299,
			Image:           "https://images.unsplash.com/photo-1571771019784-3ff35f4f4277?w=500&h=300&fit=crop",
			Description:     "Ride through golden sand dunes on authentic camels and experience traditional desert culture with local guides.",
			FullDescription: "Authentic desert camel safari experience through golden dunes with local guides, traditional cultural shows and stunning sunset views over Thar Desert.",
			Includes:        []string{"Guide", "Refreshments", "Camel ride", "Cultural show"},
			Slots:           generateSlots(),
		},
		{
			Title:           "River Rafting",
			Location:        "Rishikesh",
			Price:           1599,
			Image:           "https://images.unsplash.com/photo-1520262494112-9fe481d36ec3?w=500&h=300&fit=crop",
			Description:     "Navigate thrilling white water rapids with certified instructors and complete safety equipment for ultimate adventure.",
			FullDescription: "Exhilarating white water rafting experience on Ganges river with certified professional instructors, complete safety equipment and guided navigation through exciting rapids.",
			Includes:        []string{"Raft gear", "Life jacket", "Helmet", "Guide"},
			Slots:           generateSlots(),
		},
		{
			Title:           "Skydiving",
			Location:        "Mysore",
			Price:           24999,
			Image:           "https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?w=500&h=300&fit=crop",
			Description:     "Experience the ultimate once in lifetime tandem skydiving adventure with professional crew and safety equipment.",
			FullDescription: "Ultimate tandem skydiving experience with internationally certified professional crew, complete safety equipment and high-definition video recording of your incredible freefall adventure.",
			Includes:        []string{"Freefall video", "Parachute gear", "Trainer"},
			Slots:           generateSlots(),
		},
	}

	for i := range experiences {
		if err := db.Create(&experiences[i]).Error; err != nil {
			log.Fatal("seeding experience failed:", err)
		}
	}
	log.Printf("Created %d experiences", len(experiences))

	log.Println("Creating promo codes...")

	now := time.Now()
	validUntil := now.AddDate(1, 0, 0)

	promoCodes := []domain.PromoCode{
		{
			Code:       "SAVE10",
			Discount:   10,
			Type:       domain.DiscountPercentage,
			IsActive:   true,
			ValidFrom:  now,
			ValidUntil: validUntil,
			UsageLimit: intPtr(100),
		},
		{
			Code:       "FLAT100",
			Discount:   100,
			Type:       domain.DiscountFixed,
			IsActive:   true,
			ValidFrom:  now,
			ValidUntil: validUntil,
			UsageLimit: intPtr(50),
		},
		{
			Code:       "WELCOME20",
			Discount:   20,
			Type:       domain.DiscountPercentage,
			IsActive:   true,
			ValidFrom:  now,
			ValidUntil: validUntil,
			UsageLimit: intPtr(200),
		},
	}

	for i := range promoCodes {
		if err := db.Create(&promoCodes[i]).Error; err != nil {
			log.Fatal("seeding promo code failed:", err)
		}
	}
	log.Printf("Created %d promo codes", len(promoCodes))

	log.Println("Database seeded successfully!")
}
