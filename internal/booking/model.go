package booking

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrInvalidTimeRange = apperror.Validation("start must be before end")
	ErrTimeInPast       = apperror.Validation("booking cannot start or end in the past")
	ErrCannotBook       = apperror.Validation("item is not available for booking")
	ErrAlreadyDecided   = apperror.Validation("booking has already been approved or rejected")
	ErrInvalidPage      = apperror.Validation("from must be at least 0 and size at least 1")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is stored but no operation produces it yet.
	StatusCanceled Status = "CANCELED"
)

// Booking is a request by Booker to rent Item from Start to End.
// Item and Booker never change after creation.
type Booking struct {
	ID     int64
	Item   item.Item
	Booker user.User
	Start  time.Time
	End    time.Time
	Status Status
}

// ListFilter selects bookings either by booker or by item owner.
// Exactly one of BookerID and OwnerID is set.
type ListFilter struct {
	BookerID int64
	OwnerID  int64
	State    Predicate
	Offset   int
	Limit    int
}
