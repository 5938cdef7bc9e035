package itemrequest

import (
	"net/http"
	"time"

	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "item request not found")

// ItemRequest is a wish for an item nobody has listed yet. Owners answer
// it by creating an item that references the request.
type ItemRequest struct {
	ID          string
	Description string
	RequestorID string
	Created     time.Time
}

// ItemReply is an item listed in answer to a request.
type ItemReply struct {
	ID          string
	Name        string
	Description string
	Available   bool
	RequestID   string
}

// Details is the read view of a request together with the items
// answering it.
type Details struct {
	ItemRequest
	Items []ItemReply
}
