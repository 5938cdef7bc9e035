package http

import (
	"time"

	"github.com/peershare/lending-backend/internal/booking"
	itemHttp "github.com/peershare/lending-backend/internal/item/http"
	"github.com/peershare/lending-backend/internal/pkg/request"
	userHttp "github.com/peershare/lending-backend/internal/user/http"
)

type BookingResponse struct {
	ID     string           `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status string           `json:"status"`
	Booker userHttp.UserTag `json:"booker"`
	Item   itemHttp.ItemTag `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
	}
}

type CreateBookingRequest struct {
	ItemID string    `json:"itemId" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate rejects windows already in the past at the boundary; the
// engine itself compares times against now only at read time.
func (r *CreateBookingRequest) Validate() error {
	now := time.Now()
	if r.Start.Before(now) || r.End.Before(now) {
		return booking.ErrInvalidWindow
	}
	return nil
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state,default=ALL"`
}
