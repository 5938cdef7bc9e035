package user

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[string]*User
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}, nextID: 1}
}

func (f *fakeRepo) emailTaken(email, exceptID string) bool {
	for _, u := range f.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if f.emailTaken(u.Email, "") {
		return ErrEmailAlreadyUsed
	}
	u.ID = strconv.Itoa(f.nextID)
	f.nextID++
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return ErrNotFound
	}
	if f.emailTaken(u.Email, u.ID) {
		return ErrEmailAlreadyUsed
	}
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	service := NewService(newFakeRepo())

	t.Run("Normalizes Input", func(t *testing.T) {
		u, err := service.Create(ctx, CreateRequest{Name: "  Ada  ", Email: " Ada@Example.COM "})
		require.NoError(t, err)
		assert.Equal(t, "Ada", u.Name)
		assert.Equal(t, "ada@example.com", u.Email)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := service.Create(ctx, CreateRequest{Name: "Copycat", Email: "ADA@example.com"})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	service := NewService(newFakeRepo())

	u, err := service.Create(ctx, CreateRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	t.Run("Partial Update Keeps Other Fields", func(t *testing.T) {
		name := "Ada Lovelace"
		updated, err := service.Update(ctx, u.ID, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.Name)
		assert.Equal(t, "ada@example.com", updated.Email)
	})

	t.Run("Blank Fields Are Ignored", func(t *testing.T) {
		blank := "   "
		updated, err := service.Update(ctx, u.ID, UpdateRequest{Name: &blank, Email: &blank})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.Name)
		assert.Equal(t, "ada@example.com", updated.Email)
	})

	t.Run("Unknown User", func(t *testing.T) {
		name := "Nobody"
		_, err := service.Update(ctx, "missing", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	service := NewService(newFakeRepo())

	u, err := service.Create(ctx, CreateRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, u.ID))
	_, err = service.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
