package item

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/user"
)

// BookingLookup answers the booking questions item pages need.
// It is implemented by the booking module.
type BookingLookup interface {
	// LastAndNext returns, per item id, the latest approved booking that has started
	// by now and the earliest approved booking that starts after now.
	LastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (last, next map[int64]*BookingShort, err error)
	// HasFinishedBooking reports whether userID had an approved booking of itemID that ended before now.
	HasFinishedBooking(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
}

// RequestLookup checks that an item request exists.
type RequestLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Add(ctx context.Context, actorID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, actorID, itemID int64, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Get(ctx context.Context, actorID, itemID int64) (*View, error)
	ListByOwner(ctx context.Context, actorID int64, from, size int) ([]*View, error)
	Search(ctx context.Context, text string, from, size int) ([]*Item, error)
	AddComment(ctx context.Context, actorID, itemID int64, text string) (*Comment, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
}

type service struct {
	repo        Repository
	userService user.Service
	bookings    BookingLookup
	requests    RequestLookup
	now         func() time.Time
}

func NewService(repo Repository, userService user.Service, bookings BookingLookup, requests RequestLookup) Service {
	return &service{
		repo:        repo,
		userService: userService,
		bookings:    bookings,
		requests:    requests,
		now:         time.Now,
	}
}

func (s *service) Add(ctx context.Context, actorID int64, req CreateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	if req.RequestID != nil {
		exists, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		Name:        name,
		Description: description,
		Available:   *req.Available,
		OwnerID:     actorID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", it.ID).Msg("item created")
	return it, nil
}

func (s *service) Update(ctx context.Context, actorID, itemID int64, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Items of other users are reported as missing.
	if it.OwnerID != actorID {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		it.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrDescriptionRequired
		}
		it.Description = description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Get(ctx context.Context, actorID, itemID int64) (*View, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	views, err := s.expand(ctx, []*Item{it}, it.OwnerID == actorID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *service) ListByOwner(ctx context.Context, actorID int64, from, size int) ([]*View, error) {
	if from < 0 || size < 1 {
		return nil, ErrInvalidPage
	}

	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, actorID, from, size)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, items, true)
}

func (s *service) Search(ctx context.Context, text string, from, size int) ([]*Item, error) {
	if from < 0 || size < 1 {
		return nil, ErrInvalidPage
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, from, size)
}

func (s *service) AddComment(ctx context.Context, actorID, itemID int64, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentTextRequired
	}

	author, err := s.userService.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	allowed, err := s.bookings.HasFinishedBooking(ctx, actorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrCommentNotAllowed
	}

	c := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   actorID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error) {
	return s.repo.ListByRequestIDs(ctx, requestIDs)
}

// expand attaches comments to items and, when withBookings is set, their last and next bookings.
func (s *service) expand(ctx context.Context, items []*Item, withBookings bool) ([]*View, error) {
	views := make([]*View, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	comments, err := s.repo.ListComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]*Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	var last, next map[int64]*BookingShort
	if withBookings {
		last, next, err = s.bookings.LastAndNext(ctx, ids, s.now())
		if err != nil {
			return nil, err
		}
	}

	for i, it := range items {
		views[i] = &View{
			Item:        *it,
			LastBooking: last[it.ID],
			NextBooking: next[it.ID],
			Comments:    byItem[it.ID],
		}
	}
	return views, nil
}
