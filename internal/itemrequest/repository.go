package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nekogravitycat/shareit-backend/internal/db"
)

type Repository interface {
	Create(ctx context.Context, r *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// ListByRequester returns the requester's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error)
	// ListOthers returns requests made by anyone but userID, newest first.
	ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*ItemRequest, error)
}

type pgxRepository struct {
	db db.DBTX
}

func NewPgxRepository(conn db.DBTX) Repository {
	return &pgxRepository{db: conn}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var requestColumns = []string{"id", "description", "requester_id", "created"}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	query, args, err := psql.Insert("public.requests").
		Columns("description", "requester_id", "created").
		Values(req.Description, req.RequesterID, req.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&req.ID); err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	query, args, err := psql.Select(requestColumns...).
		From("public.requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	var req ItemRequest
	if err := r.db.QueryRow(ctx, query, args...).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sub, args, err := psql.Select("1").
		From("public.requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build request exists query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sub + ")"

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check request exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error) {
	return r.list(ctx, psql.Select(requestColumns...).
		From("public.requests").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC"))
}

func (r *pgxRepository) ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*ItemRequest, error) {
	return r.list(ctx, psql.Select(requestColumns...).
		From("public.requests").
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *pgxRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*ItemRequest, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests failed: %w", err)
	}
	return requests, nil
}
