package http

import (
	"time"

	"github.com/peershare/lending-backend/internal/booking"
	"github.com/peershare/lending-backend/internal/item"
	"github.com/peershare/lending-backend/internal/pkg/request"
)

// ItemTag is the minimal item reference embedded in other responses.
type ItemTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingTag is the short booking reference shown to an item's owner.
type BookingTag struct {
	ID       string    `json:"id"`
	BookerID string    `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func newBookingTag(b *booking.Booking) *BookingTag {
	if b == nil {
		return nil
	}
	return &BookingTag{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    cm.Created,
	}
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"requestId,omitempty"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingTag       `json:"lastBooking"`
	NextBooking *BookingTag       `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

func NewItemDetailsResponse(d *item.Details) ItemDetailsResponse {
	comments := make([]CommentResponse, len(d.Comments))
	for i := range d.Comments {
		comments[i] = NewCommentResponse(&d.Comments[i])
	}

	return ItemDetailsResponse{
		ItemResponse: NewItemResponse(&d.Item),
		LastBooking:  newBookingTag(d.LastBooking),
		NextBooking:  newBookingTag(d.NextBooking),
		Comments:     comments,
	}
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"requestId" binding:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// SearchItemsRequest defines query parameters for item search.
type SearchItemsRequest struct {
	request.PageParams
	Text string `form:"text"`
}
