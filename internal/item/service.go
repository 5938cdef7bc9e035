package item

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peershare/lending-backend/internal/booking"
	"github.com/peershare/lending-backend/internal/pkg/metrics"
	"github.com/peershare/lending-backend/internal/pkg/request"
	"github.com/peershare/lending-backend/internal/user"
)

// CreateRequest carries the fields for listing a new item.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

// UpdateRequest carries a partial item update; nil fields keep their value.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// RequestSource checks that an item request exists. The itemrequest
// module implements it.
type RequestSource interface {
	Exists(ctx context.Context, requestID string) error
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error)
	Get(ctx context.Context, callerID, itemID string) (*Details, error)
	ListByOwner(ctx context.Context, ownerID string, page request.PageParams) ([]*Details, error)
	Search(ctx context.Context, callerID, text string, page request.PageParams) ([]*Item, error)
	AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error)

	// Ref implements booking.ItemSource.
	Ref(ctx context.Context, itemID string) (booking.ItemRef, error)
}

type service struct {
	repo      Repository
	users     user.Service
	requests  RequestSource
	projector *booking.Projector
	log       *zap.Logger
	metrics   *metrics.Metrics
}

// NewService creates the item Service.
func NewService(repo Repository, users user.Service, requests RequestSource, projector *booking.Projector, log *zap.Logger, m *metrics.Metrics) Service {
	return &service{
		repo:      repo,
		users:     users,
		requests:  requests,
		projector: projector,
		log:       log,
		metrics:   m,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if err := s.requests.Exists(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		s.log.Warn("item edit denied",
			zap.String("item_id", itemID),
			zap.String("actor_id", ownerID),
		)
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Get(ctx context.Context, callerID, itemID string) (*Details, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	d := &Details{Item: *it}

	d.Comments, err = s.repo.ListComments(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// The booking timeline is owner-only information.
	if it.OwnerID == callerID {
		if err := s.projectBookings(ctx, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, page request.PageParams) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, page.Size, offset)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, 0, len(items))
	for _, it := range items {
		d := &Details{Item: *it}
		d.Comments, err = s.repo.ListComments(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		if err := s.projectBookings(ctx, d); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, callerID, text string, page request.PageParams) ([]*Item, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, text, page.Size, offset)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	completed, err := s.projector.HasCompleted(ctx, authorID, it.ID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		s.log.Warn("comment denied",
			zap.String("item_id", itemID),
			zap.String("author_id", authorID),
		)
		return nil, ErrNotEligible
	}

	cm := &Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    now,
	}

	if err := s.repo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}

	s.metrics.CommentsCreated.Inc()
	return cm, nil
}

func (s *service) Ref(ctx context.Context, itemID string) (booking.ItemRef, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return booking.ItemRef{}, err
	}
	return booking.ItemRef{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Available: it.Available,
	}, nil
}

func (s *service) projectBookings(ctx context.Context, d *Details) error {
	now := time.Now().UTC()

	last, err := s.projector.Last(ctx, d.ID, now)
	if err != nil {
		return err
	}
	next, err := s.projector.Next(ctx, d.ID, now)
	if err != nil {
		return err
	}

	d.LastBooking = last
	d.NextBooking = next
	return nil
}
