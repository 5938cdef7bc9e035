package item

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peershare/lending-backend/internal/booking"
	"github.com/peershare/lending-backend/internal/itemrequest"
	"github.com/peershare/lending-backend/internal/pkg/metrics"
	"github.com/peershare/lending-backend/internal/pkg/request"
	"github.com/peershare/lending-backend/internal/user"
)

type fakeUsers struct {
	users map[string]*user.User
}

func (f *fakeUsers) Create(context.Context, user.CreateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUsers) Update(context.Context, string, user.UpdateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) List(context.Context) ([]*user.User, error) { panic("not used") }
func (f *fakeUsers) Delete(context.Context, string) error       { panic("not used") }

type fakeRequests struct {
	known map[string]bool
}

func (f *fakeRequests) Exists(_ context.Context, requestID string) error {
	if !f.known[requestID] {
		return itemrequest.ErrNotFound
	}
	return nil
}

type fakeRepo struct {
	items    map[string]*Item
	comments map[string][]Comment
	searched []*Item
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*Item{}, comments: map[string][]Comment{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, it *Item) error {
	it.ID = strconv.Itoa(f.nextID)
	f.nextID++
	stored := *it
	f.items[it.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *it
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, it *Item) error {
	stored := *it
	f.items[it.ID] = &stored
	return nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]*Item, error) {
	var out []*Item
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) Search(context.Context, string, int, int) ([]*Item, error) {
	return f.searched, nil
}

func (f *fakeRepo) ListByRequest(context.Context, string) ([]*Item, error) {
	return nil, nil
}

func (f *fakeRepo) CreateComment(_ context.Context, cm *Comment) error {
	cm.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.comments[cm.ItemID] = append(f.comments[cm.ItemID], *cm)
	return nil
}

func (f *fakeRepo) ListComments(_ context.Context, itemID string) ([]Comment, error) {
	return f.comments[itemID], nil
}

// fakeBookings backs the projector with canned timeline rows.
type fakeBookings struct {
	last      *booking.Booking
	next      *booking.Booking
	completed bool
}

func (f *fakeBookings) Create(context.Context, *booking.Booking) error { panic("not used") }

func (f *fakeBookings) GetByID(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookings) UpdateStatus(context.Context, string, booking.Status) error {
	panic("not used")
}

func (f *fakeBookings) ListByBooker(context.Context, string, booking.StateFilter, time.Time, int, int) ([]*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookings) ListByOwner(context.Context, string, booking.StateFilter, time.Time, int, int) ([]*booking.Booking, error) {
	panic("not used")
}

func (f *fakeBookings) LastForItem(context.Context, string, time.Time) (*booking.Booking, error) {
	return f.last, nil
}

func (f *fakeBookings) NextForItem(context.Context, string, time.Time) (*booking.Booking, error) {
	return f.next, nil
}

func (f *fakeBookings) HasCompleted(context.Context, string, string, time.Time) (bool, error) {
	return f.completed, nil
}

type fixture struct {
	repo     *fakeRepo
	bookings *fakeBookings
	service  Service
}

func newFixture() *fixture {
	repo := newFakeRepo()
	users := &fakeUsers{users: map[string]*user.User{
		"owner":  {ID: "owner", Name: "Olga"},
		"renter": {ID: "renter", Name: "Rita"},
	}}
	requests := &fakeRequests{known: map[string]bool{"req-1": true}}
	bookings := &fakeBookings{}
	m := metrics.New(prometheus.NewRegistry())

	return &fixture{
		repo:     repo,
		bookings: bookings,
		service:  NewService(repo, users, requests, booking.NewProjector(bookings), zap.NewNop(), m),
	}
}

func (fx *fixture) seedItem(t *testing.T) *Item {
	t.Helper()
	it, err := fx.service.Create(context.Background(), "owner", CreateRequest{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
	})
	require.NoError(t, err)
	return it
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Basic Item", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)
		assert.Equal(t, "owner", it.OwnerID)
		assert.Nil(t, it.RequestID)
	})

	t.Run("Answering A Request", func(t *testing.T) {
		fx := newFixture()
		reqID := "req-1"
		it, err := fx.service.Create(ctx, "owner", CreateRequest{Name: "Drill", Available: true, RequestID: &reqID})
		require.NoError(t, err)
		require.NotNil(t, it.RequestID)
		assert.Equal(t, "req-1", *it.RequestID)
	})

	t.Run("Unknown Request", func(t *testing.T) {
		fx := newFixture()
		reqID := "missing"
		_, err := fx.service.Create(ctx, "owner", CreateRequest{Name: "Drill", Available: true, RequestID: &reqID})
		assert.ErrorIs(t, err, itemrequest.ErrNotFound)
	})

	t.Run("Unknown Owner", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.service.Create(ctx, "ghost", CreateRequest{Name: "Drill", Available: true})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Edits Fields", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)

		name := "Hammer drill"
		available := false
		updated, err := fx.service.Update(ctx, "owner", it.ID, UpdateRequest{Name: &name, Available: &available})
		require.NoError(t, err)
		assert.Equal(t, "Hammer drill", updated.Name)
		assert.False(t, updated.Available)
		// Untouched field keeps its value.
		assert.Equal(t, "Cordless drill", updated.Description)
	})

	t.Run("Non Owner Is Rejected", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)

		name := "Stolen drill"
		_, err := fx.service.Update(ctx, "renter", it.ID, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()

	timeline := func(fx *fixture) {
		fx.bookings.last = &booking.Booking{ID: "last", Status: booking.StatusApproved}
		fx.bookings.next = &booking.Booking{ID: "next", Status: booking.StatusApproved}
	}

	t.Run("Owner Sees Booking Timeline", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)
		timeline(fx)

		d, err := fx.service.Get(ctx, "owner", it.ID)
		require.NoError(t, err)
		require.NotNil(t, d.LastBooking)
		require.NotNil(t, d.NextBooking)
		assert.Equal(t, "last", d.LastBooking.ID)
		assert.Equal(t, "next", d.NextBooking.ID)
	})

	t.Run("Others Do Not", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)
		timeline(fx)

		d, err := fx.service.Get(ctx, "renter", it.ID)
		require.NoError(t, err)
		assert.Nil(t, d.LastBooking)
		assert.Nil(t, d.NextBooking)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.service.Get(ctx, "owner", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceSearch(t *testing.T) {
	ctx := context.Background()
	page := request.PageParams{From: 0, Size: 10}

	t.Run("Blank Text Yields Nothing", func(t *testing.T) {
		fx := newFixture()
		fx.repo.searched = []*Item{{ID: "1"}}

		got, err := fx.service.Search(ctx, "renter", "   ", page)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Matches Pass Through", func(t *testing.T) {
		fx := newFixture()
		fx.repo.searched = []*Item{{ID: "1"}, {ID: "2"}}

		got, err := fx.service.Search(ctx, "renter", "drill", page)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestServiceAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed Renter May Comment", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)
		fx.bookings.completed = true

		cm, err := fx.service.AddComment(ctx, "renter", it.ID, "solid tool")
		require.NoError(t, err)
		assert.Equal(t, "Rita", cm.AuthorName)
		assert.Equal(t, it.ID, cm.ItemID)
		assert.False(t, cm.Created.IsZero())
	})

	t.Run("No Completed Booking", func(t *testing.T) {
		fx := newFixture()
		it := fx.seedItem(t)
		fx.bookings.completed = false

		_, err := fx.service.AddComment(ctx, "renter", it.ID, "never rented it")
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.Empty(t, fx.repo.comments[it.ID])
	})
}

func TestServiceRef(t *testing.T) {
	fx := newFixture()
	it := fx.seedItem(t)

	ref, err := fx.service.Ref(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ItemRef{
		ID:        it.ID,
		OwnerID:   "owner",
		Name:      "Drill",
		Available: true,
	}, ref)
}
