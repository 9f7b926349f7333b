package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/db/txmanager"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewReviewRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, rv *model.Review) (uuid.UUID, error) {
	q := r.sb.
		Insert("reviews").
		Columns("rating", "comment", "created_at").
		Values(rv.Rating, rv.Comment, rv.CreatedAt).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// List returns one page of reviews, newest first, and the total count.
func (r *repository) List(ctx context.Context, limit, offset int) ([]model.Review, int, error) {
	db := txmanager.Q(ctx, r.pool)

	countSQL, countArgs, err := r.sb.Select("count(*)").From("reviews").ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := r.sb.
		Select("id", "rating", "comment", "created_at").
		From("reviews").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Review, 0, limit)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}

	return out, total, rows.Err()
}
