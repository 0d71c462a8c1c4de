package usecase

import (
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "full_name", "email", "password", "role", "created_at"})
}

func sampleTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
