package user

import (
	"net/http"

	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
)

// User is a participant of the platform: item owner, booker, or both.
type User struct {
	ID    string // UUID
	Name  string
	Email string
}
