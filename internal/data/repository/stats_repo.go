package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
	"github.com/monnybrand/the-shots-system/pkg/database"
)

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountServices(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
}

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *statsRepository) CountServices(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM services`)
}

func (r *statsRepository) CountBookings(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings`)
}

func (r *statsRepository) CountBookingsByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *statsRepository) count(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to run count query", zap.Error(err), zap.String("query", query))
		return 0, fmt.Errorf("count query: %w", err)
	}

	return count, nil
}
