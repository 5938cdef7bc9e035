package http

import (
	"time"

	"github.com/peershare/lending-backend/internal/itemrequest"
	"github.com/peershare/lending-backend/internal/pkg/request"
)

type ItemReplyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   string `json:"requestId"`
}

type ItemRequestResponse struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Created     time.Time           `json:"created"`
	Items       []ItemReplyResponse `json:"items"`
}

func NewItemRequestResponse(d *itemrequest.Details) ItemRequestResponse {
	items := make([]ItemReplyResponse, len(d.Items))
	for i, it := range d.Items {
		items[i] = ItemReplyResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}

	return ItemRequestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     d.Created,
		Items:       items,
	}
}

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// ListOthersRequest defines query parameters for browsing other users'
// requests.
type ListOthersRequest struct {
	request.PageParams
}
