package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// Booking carries the client-supplied event date as the raw string it
// arrived with; the store casts it on insert.
type Booking struct {
	Base
	ClientID    int64         `db:"client_id"`
	ServiceID   int64         `db:"service_id"`
	BookingDate string        `db:"booking_date"`
	Status      BookingStatus `db:"status"`
}

// BookingRow is the denormalized admin/client listing shape, joined
// against users and services.
type BookingRow struct {
	ID          int64
	ClientName  string
	ServiceName string
	BookingDate time.Time
	Status      BookingStatus
}
