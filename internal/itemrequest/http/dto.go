package http

import (
	"time"

	itemhttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

type ItemRequestResponse struct {
	ID          int64              `json:"id"`
	Description string             `json:"description"`
	Created     time.Time          `json:"created"`
	Items       []itemhttp.ItemTag `json:"items"`
}

func NewItemRequestResponse(v *itemrequest.View) ItemRequestResponse {
	items := make([]itemhttp.ItemTag, len(v.Items))
	for i, it := range v.Items {
		items[i] = itemhttp.NewItemTag(it)
	}

	return ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.Created,
		Items:       items,
	}
}

func newItemRequestList(views []*itemrequest.View) []ItemRequestResponse {
	resp := make([]ItemRequestResponse, len(views))
	for i, v := range views {
		resp[i] = NewItemRequestResponse(v)
	}
	return resp
}
