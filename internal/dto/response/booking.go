package response

import (
	"github.com/monnybrand/the-shots-system/internal/data/entity"
)

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

// BookingRowResponse mirrors the denormalized admin listing; the client
// listing omits client_name.
type BookingRowResponse struct {
	ID          int64                `json:"id"`
	ClientName  string               `json:"client_name,omitempty"`
	ServiceName string               `json:"service_name"`
	BookingDate string               `json:"booking_date"`
	Status      entity.BookingStatus `json:"status"`
}

func BookingRowToResponse(row *entity.BookingRow) *BookingRowResponse {
	return &BookingRowResponse{
		ID:          row.ID,
		ClientName:  row.ClientName,
		ServiceName: row.ServiceName,
		BookingDate: row.BookingDate.Format("2006-01-02"),
		Status:      row.Status,
	}
}

func BookingRowsToResponse(rows []*entity.BookingRow) []*BookingRowResponse {
	out := make([]*BookingRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingRowToResponse(row))
	}
	return out
}
