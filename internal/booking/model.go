package booking

import (
	"net/http"
	"time"

	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemUnavailable = apperror.New(http.StatusConflict, "item is not available for booking")
	ErrInvalidWindow   = apperror.New(http.StatusBadRequest, "start date must be earlier than end date")
	ErrSelfBooking     = apperror.New(http.StatusConflict, "cannot book your own item")
	ErrAlreadyDecided  = apperror.New(http.StatusConflict, "booking has already been decided")
	ErrNotViewable     = apperror.New(http.StatusForbidden, "booking can be viewed only by the booker or the item owner")
	ErrNotOwner        = apperror.New(http.StatusForbidden, "only the item owner may decide a booking")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a reservation of an item for a time window. ItemName,
// ItemOwnerID and BookerName are denormalized from the joined tables.
type Booking struct {
	ID          string
	Start       time.Time
	End         time.Time
	ItemID      string
	ItemName    string
	ItemOwnerID string
	BookerID    string
	BookerName  string
	Status      Status
}

// ItemRef is the slice of item state the booking engine needs. It is
// declared here rather than in the item package to keep the dependency
// pointing from item to booking only.
type ItemRef struct {
	ID        string
	OwnerID   string
	Name      string
	Available bool
}
