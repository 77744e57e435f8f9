package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/metrics"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Add(ctx context.Context, actorID int64, req CreateRequest) (*Booking, error)
	// Update approves or rejects a WAITING booking on behalf of the item owner.
	Update(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error)
	GetByUserID(ctx context.Context, actorID, bookingID int64) (*Booking, error)
	// GetAll lists the actor's own bookings, newest start first.
	GetAll(ctx context.Context, actorID int64, state string, from, size int) ([]*Booking, error)
	// GetAllOwner lists bookings of items the actor owns, newest start first.
	GetAllOwner(ctx context.Context, actorID int64, state string, from, size int) ([]*Booking, error)
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

func (s *service) Add(ctx context.Context, actorID int64, req CreateRequest) (*Booking, error) {
	booker, err := s.userService.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	it, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}
	now := s.now()
	if req.Start.Before(now) || req.End.Before(now) {
		return nil, ErrTimeInPast
	}

	if !CanCreate(actorID, it) {
		return nil, ErrCannotBook
	}

	b := &Booking{
		Item:   *it,
		Booker: *booker,
		Start:  req.Start,
		End:    req.End,
		Status: StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	zerolog.Ctx(ctx).Info().
		Int64("booking_id", b.ID).
		Int64("item_id", it.ID).
		Msg("booking created")
	return b, nil
}

func (s *service) Update(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Bookings of other owners' items are reported as missing.
	if b.Item.OwnerID != actorID {
		return nil, ErrNotFound
	}
	if !CanApprove(actorID, b) {
		return nil, ErrAlreadyDecided
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	// The store only moves bookings that are still WAITING, so of two racing
	// decisions exactly one sees updated == true.
	updated, err := s.repo.UpdateStatusIfWaiting(ctx, b.ID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAlreadyDecided
	}
	b.Status = status

	metrics.IncBookingDecision(string(status))
	zerolog.Ctx(ctx).Info().
		Int64("booking_id", b.ID).
		Str("status", string(status)).
		Msg("booking decided")
	return b, nil
}

func (s *service) GetByUserID(ctx context.Context, actorID, bookingID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanView(actorID, b) {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) GetAll(ctx context.Context, actorID int64, state string, from, size int) ([]*Booking, error) {
	return s.list(ctx, actorID, state, from, size, func(f *ListFilter) { f.BookerID = actorID })
}

func (s *service) GetAllOwner(ctx context.Context, actorID int64, state string, from, size int) ([]*Booking, error) {
	return s.list(ctx, actorID, state, from, size, func(f *ListFilter) { f.OwnerID = actorID })
}

func (s *service) list(ctx context.Context, actorID int64, state string, from, size int, scope func(*ListFilter)) ([]*Booking, error) {
	if from < 0 || size < 1 {
		return nil, ErrInvalidPage
	}

	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	pred, err := Classify(state, s.now())
	if err != nil {
		return nil, err
	}

	filter := ListFilter{State: pred, Offset: from, Limit: size}
	scope(&filter)
	return s.repo.List(ctx, filter)
}
