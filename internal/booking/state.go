package booking

// Transition is the only legal way to move a booking out of WAITING.
// A WAITING booking moves to APPROVED or REJECTED depending on approve;
// both are terminal, so any further transition attempt fails with
// ErrAlreadyDecided regardless of direction.
func Transition(current Status, approve bool) (Status, error) {
	if current != StatusWaiting {
		return current, ErrAlreadyDecided
	}
	if approve {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}
