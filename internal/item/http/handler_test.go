package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/item"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Add(ctx context.Context, actorID int64, req item.CreateRequest) (*item.Item, error) {
	args := m.Called(ctx, actorID, req)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, actorID, itemID int64, req item.UpdateRequest) (*item.Item, error) {
	args := m.Called(ctx, actorID, itemID, req)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

func (m *mockService) Get(ctx context.Context, actorID, itemID int64) (*item.View, error) {
	args := m.Called(ctx, actorID, itemID)
	v, _ := args.Get(0).(*item.View)
	return v, args.Error(1)
}

func (m *mockService) ListByOwner(ctx context.Context, actorID int64, from, size int) ([]*item.View, error) {
	args := m.Called(ctx, actorID, from, size)
	views, _ := args.Get(0).([]*item.View)
	return views, args.Error(1)
}

func (m *mockService) Search(ctx context.Context, text string, from, size int) ([]*item.Item, error) {
	args := m.Called(ctx, text, from, size)
	items, _ := args.Get(0).([]*item.Item)
	return items, args.Error(1)
}

func (m *mockService) AddComment(ctx context.Context, actorID, itemID int64, text string) (*item.Comment, error) {
	args := m.Called(ctx, actorID, itemID, text)
	c, _ := args.Get(0).(*item.Comment)
	return c, args.Error(1)
}

func (m *mockService) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	args := m.Called(ctx, requestIDs)
	items, _ := args.Get(0).([]*item.Item)
	return items, args.Error(1)
}

func newTestRouter(svc item.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), auth.ActorRequired())
	return r
}

func executeRequest(r *gin.Engine, method, path string, actorID int64, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actorID != 0 {
		req.Header.Set(auth.UserIDHeader, strconv.FormatInt(actorID, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	available := true
	svc.On("Add", mock.Anything, int64(1), item.CreateRequest{Name: "Drill", Description: "Cordless", Available: &available}).
		Return(&item.Item{ID: 10, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1}, nil)

	w := executeRequest(r, http.MethodPost, "/items", 1, map[string]any{
		"name": "Drill", "description": "Cordless", "available": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ItemTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Nil(t, resp.RequestID)
}

func TestHandler_Create_MissingAvailable(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	w := executeRequest(r, http.MethodPost, "/items", 1, map[string]any{"name": "Drill", "description": "Cordless"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Create_AvailableFalseIsAccepted(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	svc.On("Add", mock.Anything, int64(1), mock.AnythingOfType("item.CreateRequest")).
		Return(&item.Item{ID: 10, Name: "Drill", Description: "Cordless", OwnerID: 1}, nil)

	w := executeRequest(r, http.MethodPost, "/items", 1, map[string]any{
		"name": "Drill", "description": "Cordless", "available": false,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MissingActorHeader(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	w := executeRequest(r, http.MethodGet, "/items", 0, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Update_NotOwner(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	name := "Mine now"
	svc.On("Update", mock.Anything, int64(2), int64(10), item.UpdateRequest{Name: &name}).
		Return(nil, item.ErrNotFound)

	w := executeRequest(r, http.MethodPatch, "/items/10", 2, map[string]any{"name": name})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Get(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc.On("Get", mock.Anything, int64(1), int64(10)).Return(&item.View{
		Item:        item.Item{ID: 10, Name: "Drill", OwnerID: 1},
		LastBooking: &item.BookingShort{ID: 4, BookerID: 2},
		Comments:    []*item.Comment{{ID: 1, Text: "Great", AuthorName: "Bob", Created: created}},
	}, nil)

	w := executeRequest(r, http.MethodGet, "/items/10", 1, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"id": float64(4), "bookerId": float64(2)}, resp["lastBooking"])
	assert.Nil(t, resp["nextBooking"])
	comments := resp["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].(map[string]any)["authorName"])
	assert.Equal(t, "2026-02-01T10:00:00Z", comments[0].(map[string]any)["created"])
}

func TestHandler_List_Pagination(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	svc.On("ListByOwner", mock.Anything, int64(1), 5, 5).Return([]*item.View{}, nil)

	w := executeRequest(r, http.MethodGet, "/items?from=5&size=5", 1, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandler_List_InvalidPage(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	w := executeRequest(r, http.MethodGet, "/items?from=-1", 1, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = executeRequest(r, http.MethodGet, "/items?size=0", 1, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Search(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	svc.On("Search", mock.Anything, "drill", 0, 10).Return([]*item.Item{{ID: 10, Name: "Drill", Available: true}}, nil)

	w := executeRequest(r, http.MethodGet, "/items/search?text=drill", 1, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ItemTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Drill", resp[0].Name)
}

func TestHandler_CreateComment_NotAllowed(t *testing.T) {
	svc := new(mockService)
	r := newTestRouter(svc)

	svc.On("AddComment", mock.Anything, int64(2), int64(10), "Nice").Return(nil, item.ErrCommentNotAllowed)

	w := executeRequest(r, http.MethodPost, "/items/10/comment", 2, map[string]any{"text": "Nice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), item.ErrCommentNotAllowed.Message)
}
