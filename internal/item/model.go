package item

import (
	"net/http"
	"time"

	"github.com/peershare/lending-backend/internal/booking"
	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner    = apperror.New(http.StatusForbidden, "only the item owner may edit it")
	ErrNotEligible = apperror.New(http.StatusBadRequest, "only a user with a completed booking of the item may comment")
)

// Item is a single lendable unit. Available is the sole gate for new
// reservations; the booking engine reads it but never changes it.
type Item struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   *string // item request this item answers, if any
}

// Comment is feedback left by a renter after a completed booking.
// Comments are never edited or removed.
type Comment struct {
	ID         string
	Text       string
	ItemID     string
	AuthorID   string
	AuthorName string
	Created    time.Time
}

// Details is the read view of an item. Last and Next are populated only
// for the owner.
type Details struct {
	Item
	LastBooking *booking.Booking
	NextBooking *booking.Booking
	Comments    []Comment
}
