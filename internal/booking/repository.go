package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nekogravitycat/shareit-backend/internal/db"
	"github.com/nekogravitycat/shareit-backend/internal/item"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter ListFilter) ([]*Booking, error)

	// UpdateStatusIfWaiting moves a WAITING booking to status and reports whether it did.
	// A booking that has already left WAITING is left untouched.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error)

	// LastAndNext and HasFinishedBooking serve item pages; see item.BookingLookup.
	LastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (last, next map[int64]*item.BookingShort, err error)
	HasFinishedBooking(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
}

var _ item.BookingLookup = (Repository)(nil)

type pgxRepository struct {
	db db.DBTX
}

func NewPgxRepository(conn db.DBTX) Repository {
	return &pgxRepository{db: conn}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id", "b.start_date", "b.end_date", "b.status",
	"i.id", "i.name", "i.description", "i.available", "i.owner_id", "i.request_id",
	"u.id", "u.name", "u.email",
}

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var status string
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.Item.ID, b.Booker.ID, string(b.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

// stateCondition is the SQL form of Predicate.Match. It returns nil for ALL.
func stateCondition(p Predicate) squirrel.Sqlizer {
	switch p.State() {
	case StateCurrent:
		return squirrel.And{
			squirrel.LtOrEq{"b.start_date": p.Now()},
			squirrel.GtOrEq{"b.end_date": p.Now()},
		}
	case StatePast:
		return squirrel.Lt{"b.end_date": p.Now()}
	case StateFuture:
		return squirrel.Gt{"b.start_date": p.Now()}
	case StateWaiting:
		return squirrel.Eq{"b.status": string(StatusWaiting)}
	case StateRejected:
		return squirrel.Eq{"b.status": string(StatusRejected)}
	default:
		return nil
	}
}

func (r *pgxRepository) List(ctx context.Context, filter ListFilter) ([]*Booking, error) {
	query := selectBookings()

	if filter.BookerID != 0 {
		query = query.Where(squirrel.Eq{"b.booker_id": filter.BookerID})
	}
	if filter.OwnerID != 0 {
		query = query.Where(squirrel.Eq{"i.owner_id": filter.OwnerID})
	}
	if cond := stateCondition(filter.State); cond != nil {
		query = query.Where(cond)
	}

	query = query.OrderBy("b.start_date DESC", "b.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	bookings := []*Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error) {
	query, args, err := psql.Update("public.bookings").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id, "status": string(StatusWaiting)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

func (r *pgxRepository) LastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*item.BookingShort, map[int64]*item.BookingShort, error) {
	last := map[int64]*item.BookingShort{}
	next := map[int64]*item.BookingShort{}
	if len(itemIDs) == 0 {
		return last, next, nil
	}

	approved := squirrel.Eq{"item_id": itemIDs, "status": string(StatusApproved)}

	// One row per item: the latest booking already started.
	lastQuery := psql.Select("item_id", "id", "booker_id", "start_date", "end_date").
		Options("DISTINCT ON (item_id)").
		From("public.bookings").
		Where(approved).
		Where(squirrel.LtOrEq{"start_date": now}).
		OrderBy("item_id", "start_date DESC")
	if err := r.collectShort(ctx, lastQuery, last); err != nil {
		return nil, nil, err
	}

	// One row per item: the earliest booking yet to start.
	nextQuery := psql.Select("item_id", "id", "booker_id", "start_date", "end_date").
		Options("DISTINCT ON (item_id)").
		From("public.bookings").
		Where(approved).
		Where(squirrel.Gt{"start_date": now}).
		OrderBy("item_id", "start_date ASC")
	if err := r.collectShort(ctx, nextQuery, next); err != nil {
		return nil, nil, err
	}

	return last, next, nil
}

func (r *pgxRepository) collectShort(ctx context.Context, builder squirrel.SelectBuilder, into map[int64]*item.BookingShort) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build item bookings query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("list item bookings failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var b item.BookingShort
		if err := rows.Scan(&itemID, &b.ID, &b.BookerID, &b.Start, &b.End); err != nil {
			return fmt.Errorf("scan item booking failed: %w", err)
		}
		into[itemID] = &b
	}
	return rows.Err()
}

func (r *pgxRepository) HasFinishedBooking(ctx context.Context, userID, itemID int64, now time.Time) (bool, error) {
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"booker_id": userID, "item_id": itemID, "status": string(StatusApproved)}).
		Where(squirrel.Lt{"end_date": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build finished booking query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sub + ")"

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished booking failed: %w", err)
	}
	return exists, nil
}
