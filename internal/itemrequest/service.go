package itemrequest

import (
	"context"
	"time"

	"github.com/peershare/lending-backend/internal/pkg/request"
	"github.com/peershare/lending-backend/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, requestorID, description string) (*ItemRequest, error)
	GetByID(ctx context.Context, callerID, requestID string) (*Details, error)
	ListOwn(ctx context.Context, requestorID string) ([]*Details, error)
	ListOthers(ctx context.Context, callerID string, page request.PageParams) ([]*Details, error)

	// Exists implements item.RequestSource.
	Exists(ctx context.Context, requestID string) error
}

type service struct {
	repo  Repository
	users user.Service
}

// NewService creates the item request Service.
func NewService(repo Repository, users user.Service) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, requestorID, description string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, callerID, requestID string) (*Details, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.withReplies(ctx, req)
}

func (s *service) ListOwn(ctx context.Context, requestorID string) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.detailsFor(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, callerID string, page request.PageParams) ([]*Details, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}
	offset, err := page.Offset()
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListOthers(ctx, callerID, page.Size, offset)
	if err != nil {
		return nil, err
	}
	return s.detailsFor(ctx, requests)
}

func (s *service) Exists(ctx context.Context, requestID string) error {
	return s.repo.Exists(ctx, requestID)
}

func (s *service) withReplies(ctx context.Context, req *ItemRequest) (*Details, error) {
	replies, err := s.repo.RepliesFor(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &Details{ItemRequest: *req, Items: replies}, nil
}

func (s *service) detailsFor(ctx context.Context, requests []*ItemRequest) ([]*Details, error) {
	details := make([]*Details, 0, len(requests))
	for _, req := range requests {
		d, err := s.withReplies(ctx, req)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
