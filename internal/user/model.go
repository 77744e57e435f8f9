package user

import (
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed = apperror.Conflict("email already used")
	ErrUserReferenced   = apperror.Conflict("user has items or bookings")
	ErrNameRequired     = apperror.Validation("name is required")
	ErrEmailRequired    = apperror.Validation("email is required")
)

// User is a registered participant: an item owner, a booker, or both.
type User struct {
	ID    int64
	Name  string
	Email string
}
