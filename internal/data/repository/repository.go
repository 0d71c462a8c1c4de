package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/pkg/database"
)

type Repository struct {
	User    UserRepository
	Service ServiceRepository
	Booking BookingRepository
	Work    WorkRepository
	Stats   StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Service: NewServiceRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Work:    NewWorkRepository(db, log),
		Stats:   NewStatsRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
