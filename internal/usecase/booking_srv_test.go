package usecase

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/dto/request"
)

func newBookingService(t *testing.T) (BookingService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	bookings := repository.NewBookingRepository(mock, zap.NewNop())
	return NewBookingService(bookings, zap.NewNop()), mock
}

func TestBookingService_CreateBooking_ForcesPending(t *testing.T) {
	service, mock := newBookingService(t)

	// Whatever the caller sends, the inserted status is PENDING
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(3), int64(2), "2025-01-01", entity.BookingStatusPending, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	result, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		ClientID:    3,
		ServiceID:   2,
		BookingDate: "2025-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_CreateBooking_MissingFields(t *testing.T) {
	service, mock := newBookingService(t)

	_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
		ClientID: 3,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingStatus_RejectsUnknownStatus(t *testing.T) {
	service, mock := newBookingService(t)

	err := service.UpdateBookingStatus(context.Background(), 5, &request.UpdateBookingStatusRequest{
		Status: "SHIPPED",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	service, mock := newBookingService(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(int64(5), entity.BookingStatusApproved).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := service.UpdateBookingStatus(context.Background(), 5, &request.UpdateBookingStatusRequest{
		Status: "APPROVED",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
