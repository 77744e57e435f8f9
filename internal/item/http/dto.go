package http

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

// ItemTag is the item summary embedded in bookings and item requests.
type ItemTag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

func NewItemTag(it *item.Item) ItemTag {
	return ItemTag{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

type BookingShortResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

type ItemResponse struct {
	ItemTag
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

func NewItemResponse(v *item.View) ItemResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = NewCommentResponse(c)
	}

	return ItemResponse{
		ItemTag:     NewItemTag(&v.Item),
		LastBooking: newBookingShort(v.LastBooking),
		NextBooking: newBookingShort(v.NextBooking),
		Comments:    comments,
	}
}

func newBookingShort(b *item.BookingShort) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID}
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,min=1"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type SearchRequest struct {
	request.PageParams
	Text string `form:"text"`
}
