package http

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/booking"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
// State is checked by the service so unknown keywords get their own message.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state,default=ALL"`
}

type BookingResponse struct {
	ID     int64                 `json:"id"`
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Status string                `json:"status"`
	Booker userHttp.UserResponse `json:"booker"`
	Item   itemHttp.ItemTag      `json:"item"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userHttp.NewUserResponse(&b.Booker),
		Item:   itemHttp.NewItemTag(&b.Item),
	}
}

func newBookingList(bookings []*booking.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = NewBookingResponse(b)
	}
	return resp
}

type CreateBookingRequest struct {
	ItemID int64      `json:"itemId" binding:"required,min=1"`
	Start  *time.Time `json:"start" binding:"required"`
	End    *time.Time `json:"end" binding:"required"`
}

type DecideBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}
