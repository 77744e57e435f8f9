package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	v, err := h.service.Add(c.Request.Context(), auth.GetUserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(v))
}

func (h *Handler) ListOwn(c *gin.Context) {
	views, err := h.service.GetUserRequests(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newItemRequestList(views))
}

func (h *Handler) ListAll(c *gin.Context) {
	var page request.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	views, err := h.service.GetAllRequests(c.Request.Context(), auth.GetUserID(c), page.From, page.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newItemRequestList(views))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request id")
		return
	}

	v, err := h.service.GetRequestByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(v))
}
