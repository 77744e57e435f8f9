package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	b, err := h.service.Add(c.Request.Context(), auth.GetUserID(c), booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  *body.Start,
		End:    *body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var query DecideBookingRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "query parameter approved must be true or false")
		return
	}

	b, err := h.service.Update(c.Request.Context(), auth.GetUserID(c), uri.ID, *query.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	b, err := h.service.GetByUserID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	bookings, err := h.service.GetAll(c.Request.Context(), auth.GetUserID(c), query.State, query.From, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingList(bookings))
}

func (h *Handler) ListOwner(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	bookings, err := h.service.GetAllOwner(c.Request.Context(), auth.GetUserID(c), query.State, query.From, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingList(bookings))
}
