package item

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item not found")
	ErrRequestNotFound     = apperror.NotFound("item request not found")
	ErrNameRequired        = apperror.Validation("name is required")
	ErrDescriptionRequired = apperror.Validation("description is required")
	ErrAvailableRequired   = apperror.Validation("available is required")
	ErrCommentTextRequired = apperror.Validation("comment text is required")
	ErrCommentNotAllowed   = apperror.Validation("only users who have finished a booking of this item can comment on it")
	ErrInvalidPage         = apperror.Validation("from must be at least 0 and size at least 1")
)

// Item is a thing a user offers for rent.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // request this item was listed in response to, if any
}

// Comment is feedback left by a past booker.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingShort is the booking summary shown to an item's owner.
type BookingShort struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// View is an item with the details shown on item pages.
// LastBooking and NextBooking are only filled for the owner.
type View struct {
	Item
	LastBooking *BookingShort
	NextBooking *BookingShort
	Comments    []*Comment
}
