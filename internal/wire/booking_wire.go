package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/monnybrand/the-shots-system/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - all bookings for the admin dashboard
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/{clientId} - one client's bookings
		r.Get("/{clientId}", bookingHandler.ListClientBookings)

		// POST /api/bookings - client creates a booking (starts PENDING)
		r.Post("/", bookingHandler.CreateBooking)

		// PUT /api/bookings/{id}/status - admin approves/rejects
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
