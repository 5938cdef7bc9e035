package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing item request data.
type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id string) (*ItemRequest, error)
	Exists(ctx context.Context, id string) error
	ListByRequestor(ctx context.Context, requestorID string) ([]*ItemRequest, error)
	// ListOthers returns requests created by anyone except the given
	// user, newest first, paginated.
	ListOthers(ctx context.Context, requestorID string, limit, offset int) ([]*ItemRequest, error)
	// RepliesFor returns the items answering a request.
	RepliesFor(ctx context.Context, requestID string) ([]ItemReply, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectRequests() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("id", "description", "requestor_id", "created").
		From("public.requests")
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.requests").
		Columns("description", "requestor_id", "created").
		Values(req.Description, req.RequestorID, req.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&req.ID)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ItemRequest, error) {
	query, args, err := selectRequests().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) Exists(ctx context.Context, id string) error {
	const query = `SELECT EXISTS (SELECT 1 FROM public.requests WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("check request exists failed: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID string) ([]*ItemRequest, error) {
	query, args, err := selectRequests().
		Where(squirrel.Eq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) ListOthers(ctx context.Context, requestorID string, limit, offset int) ([]*ItemRequest, error) {
	query, args, err := selectRequests().
		Where(squirrel.NotEq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list other requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) queryRequests(ctx context.Context, query string, args []any) ([]*ItemRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}

func (r *pgxRepository) RepliesFor(ctx context.Context, requestID string) ([]ItemReply, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "is_available", "request_id").
		From("public.items").
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build request replies query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list request replies failed: %w", err)
	}
	defer rows.Close()

	var replies []ItemReply
	for rows.Next() {
		var it ItemReply
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.RequestID); err != nil {
			return nil, fmt.Errorf("scan request reply failed: %w", err)
		}
		replies = append(replies, it)
	}
	return replies, rows.Err()
}
