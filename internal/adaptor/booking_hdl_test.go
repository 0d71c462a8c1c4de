package adaptor

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/usecase"
)

func newBookingRouter(t *testing.T) (*chi.Mux, pgxmock.PgxPoolIface) {
	t.Helper()

	repo, mock := newMockRepo(t)
	service := usecase.NewBookingService(repo.Booking, zap.NewNop())
	handler := NewBookingHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/bookings", handler.CreateBooking)
	r.Get("/api/bookings", handler.ListBookings)
	r.Get("/api/bookings/{clientId}", handler.ListClientBookings)
	r.Put("/api/bookings/{id}/status", handler.UpdateBookingStatus)
	return r, mock
}

// Whatever the request claims, a new booking always starts PENDING.
func TestBookingHandler_CreateBooking_StartsPending(t *testing.T) {
	router, mock := newBookingRouter(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(1), int64(2), "2025-06-15", entity.BookingStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	rec, resp := serveJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"client_id":    1,
		"service_id":   2,
		"booking_date": "2025-06-15",
		"status":       "APPROVED",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking created successfully", resp.Message)

	var data struct {
		BookingID int64 `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(10), data.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_CreateBooking_MissingDate(t *testing.T) {
	router, mock := newBookingRouter(t)

	rec, resp := serveJSON(t, router, http.MethodPost, "/api/bookings", map[string]any{
		"client_id":  1,
		"service_id": 2,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Client ID, Service ID, and event date are required", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_ListBookings(t *testing.T) {
	router, mock := newBookingRouter(t)

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(pgxmock.NewRows([]string{"id", "client_name", "service_name", "booking_date", "status"}).
			AddRow(int64(10), "A", "Wedding", sampleTime(), entity.BookingStatusPending).
			AddRow(int64(9), "B", "Drone", sampleTime(), entity.BookingStatusApproved))

	rec, resp := serveJSON(t, router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		ID          int64  `json:"id"`
		ClientName  string `json:"client_name"`
		ServiceName string `json:"service_name"`
		BookingDate string `json:"booking_date"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].ClientName)
	assert.Equal(t, "2025-03-14", rows[0].BookingDate)
	assert.Equal(t, "APPROVED", rows[1].Status)
}

func TestBookingHandler_ListClientBookings(t *testing.T) {
	router, mock := newBookingRouter(t)

	mock.ExpectQuery("WHERE b.client_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "service_name", "booking_date", "status"}).
			AddRow(int64(10), "Wedding", sampleTime(), entity.BookingStatusPending))

	rec, resp := serveJSON(t, router, http.MethodGet, "/api/bookings/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		ID          int64  `json:"id"`
		ClientName  string `json:"client_name,omitempty"`
		ServiceName string `json:"service_name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Wedding", rows[0].ServiceName)
	// Client's own view never carries its own name
	assert.Empty(t, rows[0].ClientName)
}

func TestBookingHandler_ListClientBookings_BadID(t *testing.T) {
	router, mock := newBookingRouter(t)

	rec, resp := serveJSON(t, router, http.MethodGet, "/api/bookings/zero", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid client ID", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_UpdateBookingStatus(t *testing.T) {
	router, mock := newBookingRouter(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(int64(10), entity.BookingStatusApproved).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	rec, resp := serveJSON(t, router, http.MethodPut, "/api/bookings/10/status", map[string]string{
		"status": "APPROVED",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking approved successfully", resp.Message)
}

func TestBookingHandler_UpdateBookingStatus_Invalid(t *testing.T) {
	router, mock := newBookingRouter(t)

	rec, resp := serveJSON(t, router, http.MethodPut, "/api/bookings/10/status", map[string]string{
		"status": "SHIPPED",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be PENDING, APPROVED or REJECTED", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_UpdateBookingStatus_UnknownID(t *testing.T) {
	router, mock := newBookingRouter(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(int64(999), entity.BookingStatusRejected).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	rec, resp := serveJSON(t, router, http.MethodPut, "/api/bookings/999/status", map[string]string{
		"status": "REJECTED",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking rejected successfully", resp.Message)
}
