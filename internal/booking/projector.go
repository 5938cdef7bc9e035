package booking

import (
	"context"
	"time"
)

// Projector derives an item's booking timeline: the most recent past
// APPROVED booking, the nearest future one, and whether a user ever
// completed a rental. The views are recomputed on every call since they
// depend on the reference time.
type Projector struct {
	repo Repository
}

// NewProjector creates a Projector over the booking storage.
func NewProjector(repo Repository) *Projector {
	return &Projector{repo: repo}
}

// Last returns the APPROVED booking of the item with the greatest start
// still before now, or nil.
func (p *Projector) Last(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	return p.repo.LastForItem(ctx, itemID, now)
}

// Next returns the APPROVED booking of the item with the smallest start
// after now, or nil.
func (p *Projector) Next(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	return p.repo.NextForItem(ctx, itemID, now)
}

// HasCompleted reports whether the user has an APPROVED booking of the
// item that ended before now. It gates comment creation.
func (p *Projector) HasCompleted(ctx context.Context, userID, itemID string, now time.Time) (bool, error) {
	return p.repo.HasCompleted(ctx, userID, itemID, now)
}
