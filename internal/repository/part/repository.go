package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
	"github.com/you-humble/carwash/platform/db/txmanager"
)

const constraintName = "parts_name_key"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, part *model.Part) (uuid.UUID, error) {
	q := r.sb.
		Insert("parts").
		Columns("name", "unit_price_cents", "stock_quantity", "manufactured_on", "expires_on",
			"company_name", "description").
		Values(part.Name, pgutil.Cents(part.UnitPrice), part.StockQuantity, part.ManufacturedOn, part.ExpiresOn,
			part.CompanyName, part.Description).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, mapUnique(err)
	}

	return id, nil
}

func (r *repository) PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	return r.one(ctx, r.sb.Select(partColumns...).From("parts").Where(sq.Eq{"id": id}))
}

// PartForUpdate locks the part row until the surrounding transaction ends.
func (r *repository) PartForUpdate(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	return r.one(ctx, r.sb.Select(partColumns...).From("parts").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *repository) List(ctx context.Context, filter model.PartFilter) ([]model.Part, error) {
	q := r.sb.Select(partColumns...).From("parts").OrderBy("name")

	if filter.NamePrefix != "" {
		q = q.Where(sq.ILike{"name": pgutil.Prefix(filter.NamePrefix)})
	}
	if filter.CompanyPrefix != "" {
		q = q.Where(sq.ILike{"company_name": pgutil.Prefix(filter.CompanyPrefix)})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := txmanager.Q(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Part, 0)
	for rows.Next() {
		var row partRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, err
		}
		out = append(out, *rowToModel(&row))
	}

	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, part *model.Part) error {
	if part.ID == uuid.Nil {
		return errors.New("empty part id")
	}

	q := r.sb.
		Update("parts").
		SetMap(sq.Eq{
			"name":             part.Name,
			"unit_price_cents": pgutil.Cents(part.UnitPrice),
			"stock_quantity":   part.StockQuantity,
			"manufactured_on":  part.ManufacturedOn,
			"expires_on":       part.ExpiresOn,
			"company_name":     part.CompanyName,
			"description":      part.Description,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": part.ID})

	return r.exec(ctx, q)
}

func (r *repository) UpdateStock(ctx context.Context, id uuid.UUID, stock int64) error {
	q := r.sb.
		Update("parts").
		Set("stock_quantity", stock).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.Delete("parts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) one(ctx context.Context, q sq.SelectBuilder) (*model.Part, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var row partRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

func (r *repository) exec(ctx context.Context, q sq.UpdateBuilder) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapUnique(err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func mapUnique(err error) error {
	if txmanager.ConstraintName(err) == constraintName {
		return model.ErrDuplicatePart
	}
	return txmanager.Classify(err)
}
