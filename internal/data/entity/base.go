package entity

import (
	"time"
)

// Base covers the serial-ID tables; every row carries its insert time.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
