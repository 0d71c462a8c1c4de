package request

// CreateBookingRequest carries the client-supplied event date as-is;
// any status field present in the body is ignored.
type CreateBookingRequest struct {
	ClientID    int64  `json:"client_id" validate:"required,gt=0"`
	ServiceID   int64  `json:"service_id" validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}
