package booking

import "time"

// The checks below are pure: they operate on already-loaded values and
// never touch storage. All of them run before a booking is persisted.

// CheckItemAvailable fails when the item's availability flag is off.
// The flag is the sole gate for new reservations; the engine never
// mutates it.
func CheckItemAvailable(it ItemRef) error {
	if !it.Available {
		return ErrItemUnavailable
	}
	return nil
}

// CheckWindow fails unless end is strictly after start.
func CheckWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	return nil
}

// CheckNotSelfBooking fails when the requesting user owns the item.
func CheckNotSelfBooking(bookerID string, it ItemRef) error {
	if bookerID == it.OwnerID {
		return ErrSelfBooking
	}
	return nil
}

// CheckViewable allows only the booker and the item owner to read a booking.
func CheckViewable(b *Booking, userID string) error {
	if userID == b.BookerID || userID == b.ItemOwnerID {
		return nil
	}
	return ErrNotViewable
}

// CheckOwner allows only the item owner to decide a booking.
func CheckOwner(userID string, b *Booking) error {
	if userID != b.ItemOwnerID {
		return ErrNotOwner
	}
	return nil
}
