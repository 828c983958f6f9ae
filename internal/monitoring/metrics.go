package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total confirmed bookings",
		},
	)

	bookingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_failures_total",
			Help: "Total rejected booking attempts",
		},
		[]string{"reason"},
	)

	promoValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promo_validations_total",
			Help: "Total promo code validations",
		},
		[]string{"result"},
	)

	spotsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spots_booked_total",
			Help: "Total slot spots consumed by confirmed bookings",
		},
	)
)

// Track a confirmed booking
func TrackBookingCreated(quantity int) {
	bookingsCreated.Inc()
	spotsBooked.Add(float64(quantity))
}

// Track a rejected booking attempt
func TrackBookingFailure(reason string) {
	bookingFailures.WithLabelValues(reason).Inc()
}

// Track a promo validation outcome
func TrackPromoValidation(result string) {
	promoValidations.WithLabelValues(result).Inc()
}
