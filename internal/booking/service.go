package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/peershare/lending-backend/internal/pkg/metrics"
	"github.com/peershare/lending-backend/internal/pkg/request"
	"github.com/peershare/lending-backend/internal/user"
)

// CreateRequest carries the fields for reserving an item.
type CreateRequest struct {
	BookerID string
	ItemID   string
	Start    time.Time
	End      time.Time
}

// ItemSource supplies the item state the engine needs. The item module
// implements it; the interface lives here to avoid an import cycle.
type ItemSource interface {
	Ref(ctx context.Context, itemID string) (ItemRef, error)
}

// Service defines the booking reservation engine operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, bookingID string, approve bool, actorID string) (*Booking, error)
	Get(ctx context.Context, bookingID, actorID string) (*Booking, error)
	ListForBooker(ctx context.Context, bookerID string, f StateFilter, page request.PageParams) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID string, f StateFilter, page request.PageParams) ([]*Booking, error)
}

type service struct {
	repo    Repository
	users   user.Service
	items   ItemSource
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates the booking Service.
func NewService(repo Repository, users user.Service, items ItemSource, log *zap.Logger, m *metrics.Metrics) Service {
	return &service{
		repo:    repo,
		users:   users,
		items:   items,
		log:     log,
		metrics: m,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	booker, err := s.users.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.Ref(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if err := CheckItemAvailable(it); err != nil {
		return nil, s.violation("item_unavailable", req.BookerID, err)
	}
	if err := CheckWindow(req.Start, req.End); err != nil {
		return nil, s.violation("invalid_window", req.BookerID, err)
	}
	if err := CheckNotSelfBooking(req.BookerID, it); err != nil {
		return nil, s.violation("self_booking", req.BookerID, err)
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		Status:      StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.metrics.BookingsCreated.Inc()
	return b, nil
}

func (s *service) Decide(ctx context.Context, bookingID string, approve bool, actorID string) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := CheckOwner(actorID, b); err != nil {
		return nil, s.violation("decide_not_owner", actorID, err)
	}

	next, err := Transition(b.Status, approve)
	if err != nil {
		return nil, s.violation("already_decided", actorID, err)
	}

	// The conditional update can still lose to a concurrent decide.
	if err := s.repo.UpdateStatus(ctx, b.ID, next); err != nil {
		return nil, err
	}
	b.Status = next

	decision := "rejected"
	if approve {
		decision = "approved"
	}
	s.metrics.BookingsDecided.WithLabelValues(decision).Inc()

	return b, nil
}

func (s *service) Get(ctx context.Context, bookingID, actorID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := CheckViewable(b, actorID); err != nil {
		return nil, s.violation("view_not_allowed", actorID, err)
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID string, f StateFilter, page request.PageParams) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, bookerID, f, time.Now().UTC(), page.Size, offset)
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, f StateFilter, page request.PageParams) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, ownerID, f, time.Now().UTC(), page.Size, offset)
}

func (s *service) violation(rule, actorID string, err error) error {
	s.log.Warn("booking rule violated",
		zap.String("rule", rule),
		zap.String("actor_id", actorID),
		zap.Error(err),
	)
	s.metrics.RuleViolations.WithLabelValues(rule).Inc()
	return err
}
