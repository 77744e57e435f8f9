package itemrequest

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item request not found")
	ErrDescriptionRequired = apperror.Validation("description is required")
	ErrInvalidPage         = apperror.Validation("from must be at least 0 and size at least 1")
)

// ItemRequest is a user's ask for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// View is a request together with the items listed in answer to it.
type View struct {
	ItemRequest
	Items []*item.Item
}
