package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/pkg/database"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAllRows(ctx context.Context) ([]*entity.BookingRow, error)
	FindRowsByClient(ctx context.Context, clientID int64) ([]*entity.BookingRow, error)
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (client_id, service_id, booking_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.ClientID,
		booking.ServiceID,
		booking.BookingDate,
		booking.Status,
		booking.CreatedAt,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("client_id", booking.ClientID),
			zap.Int64("service_id", booking.ServiceID),
		)
		return fmt.Errorf("create booking for client %d: %w", booking.ClientID, err)
	}

	return nil
}

// FindAllRows returns the admin view: every booking joined with the
// client and service names, newest event first.
func (r *bookingRepository) FindAllRows(ctx context.Context) ([]*entity.BookingRow, error) {
	query := `
		SELECT b.id, u.full_name AS client_name, s.service_name, b.booking_date, b.status
		FROM bookings b
		JOIN users u ON b.client_id = u.id
		JOIN services s ON b.service_id = s.id
		ORDER BY b.booking_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingRow
	for rows.Next() {
		var row entity.BookingRow
		err := rows.Scan(
			&row.ID,
			&row.ClientName,
			&row.ServiceName,
			&row.BookingDate,
			&row.Status,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindRowsByClient(ctx context.Context, clientID int64) ([]*entity.BookingRow, error) {
	query := `
		SELECT b.id, s.service_name, b.booking_date, b.status
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.client_id = $1
		ORDER BY b.booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		r.log.Error("Failed to list bookings by client",
			zap.Error(err),
			zap.Int64("client_id", clientID),
		)
		return nil, fmt.Errorf("find bookings by client %d: %w", clientID, err)
	}
	defer rows.Close()

	var bookings []*entity.BookingRow
	for rows.Next() {
		var row entity.BookingRow
		err := rows.Scan(
			&row.ID,
			&row.ServiceName,
			&row.BookingDate,
			&row.Status,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// UpdateStatus overwrites the status unconditionally; an unknown ID is
// a zero-row no-op, not an error.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (int64, error) {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("update booking %d status to %s: %w", id, string(status), err)
	}

	return result.RowsAffected(), nil
}
