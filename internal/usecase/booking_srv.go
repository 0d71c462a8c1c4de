package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/internal/data/repository"
	"github.com/monnybrand/the-shots-system/internal/dto/request"
	"github.com/monnybrand/the-shots-system/internal/dto/response"
	"github.com/monnybrand/the-shots-system/pkg/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	ListBookings(ctx context.Context) ([]*response.BookingRowResponse, error)
	ListBookingsByClient(ctx context.Context, clientID int64) ([]*response.BookingRowResponse, error)
	UpdateBookingStatus(ctx context.Context, id int64, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

// CreateBooking always starts the booking PENDING; a status field in the
// request body never reaches the store.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking := &entity.Booking{
		Base: entity.Base{
			CreatedAt: time.Now(),
		},
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
		Status:      entity.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("client_id", booking.ClientID),
		zap.Int64("service_id", booking.ServiceID),
		zap.String("booking_date", booking.BookingDate))

	return &response.CreateBookingResponse{BookingID: booking.ID}, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*response.BookingRowResponse, error) {
	rows, err := s.bookings.FindAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingRowsToResponse(rows), nil
}

func (s *bookingService) ListBookingsByClient(ctx context.Context, clientID int64) ([]*response.BookingRowResponse, error) {
	rows, err := s.bookings.FindRowsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for client %d: %w", clientID, err)
	}

	return response.BookingRowsToResponse(rows), nil
}

// UpdateBookingStatus validates the status against the three recognized
// values and overwrites unconditionally; an unknown booking ID is a
// zero-row no-op.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int64, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	affected, err := s.bookings.UpdateStatus(ctx, id, entity.BookingStatus(req.Status))
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if affected == 0 {
		s.log.Warn("Status update matched no booking", zap.Int64("booking_id", id))
	}

	s.log.Info("Booking status updated",
		zap.Int64("booking_id", id),
		zap.String("status", req.Status))

	return nil
}
