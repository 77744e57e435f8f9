package itemrequest

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type Service interface {
	Add(ctx context.Context, actorID int64, description string) (*View, error)
	GetUserRequests(ctx context.Context, actorID int64) ([]*View, error)
	GetAllRequests(ctx context.Context, actorID int64, from, size int) ([]*View, error)
	GetRequestByID(ctx context.Context, actorID, requestID int64) (*View, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
	now         func() time.Time
}

func NewService(repo Repository, userService user.Service, itemService item.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
		now:         time.Now,
	}
}

func (s *service) Add(ctx context.Context, actorID int64, description string) (*View, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequesterID: actorID,
		Created:     s.now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("request_id", req.ID).Msg("item request created")
	return &View{ItemRequest: *req, Items: []*item.Item{}}, nil
}

func (s *service) GetUserRequests(ctx context.Context, actorID int64) ([]*View, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *service) GetAllRequests(ctx context.Context, actorID int64, from, size int) ([]*View, error) {
	if from < 0 || size < 1 {
		return nil, ErrInvalidPage
	}

	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListOthers(ctx, actorID, from, size)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *service) GetRequestByID(ctx context.Context, actorID, requestID int64) (*View, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	views, err := s.withItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *service) withItems(ctx context.Context, requests []*ItemRequest) ([]*View, error) {
	views := make([]*View, len(requests))
	if len(requests) == 0 {
		return views, nil
	}

	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	items, err := s.itemService.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]*item.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	for i, r := range requests {
		answers := byRequest[r.ID]
		if answers == nil {
			answers = []*item.Item{}
		}
		views[i] = &View{ItemRequest: *r, Items: answers}
	}
	return views, nil
}
