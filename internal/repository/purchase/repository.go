package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
	"github.com/you-humble/carwash/platform/db/txmanager"
)

const constraintKey = "purchases_part_employee_customer_key"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPurchaseRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ByKeyForUpdate locks the purchase recorded for the (part, employee,
// customer) triple, if any.
func (r *repository) ByKeyForUpdate(ctx context.Context, partID, employeeID, customerID uuid.UUID) (*model.Purchase, error) {
	q := r.sb.
		Select(purchaseColumns...).
		From("purchases pu").
		Where(sq.Eq{
			"pu.part_id":     partID,
			"pu.employee_id": employeeID,
			"pu.customer_id": customerID,
		}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var row purchaseRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

func (r *repository) Create(ctx context.Context, p *model.Purchase) (uuid.UUID, error) {
	q := r.sb.
		Insert("purchases").
		Columns("part_id", "employee_id", "customer_id", "quantity", "total_price_cents", "purchased_at").
		Values(p.PartID, p.EmployeeID, p.CustomerID, p.Quantity, pgutil.Cents(p.TotalPrice), p.PurchasedAt).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if txmanager.ConstraintName(err) == constraintKey {
			return uuid.Nil, model.ErrPurchaseKeyUsed
		}
		return uuid.Nil, txmanager.Classify(err)
	}

	return id, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int64, total decimal.Decimal) error {
	q := r.sb.
		Update("purchases").
		Set("quantity", quantity).
		Set("total_price_cents", pgutil.Cents(total)).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPurchaseNotFound
	}

	return nil
}

func (r *repository) PurchaseByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	sqlStr, args, err := r.selectWithNames().Where(sq.Eq{"pu.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var row purchaseRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDestWithNames()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

func (r *repository) List(ctx context.Context, filter model.PurchaseFilter) ([]model.Purchase, error) {
	q := r.selectWithNames().OrderBy("pu.purchased_at DESC", "pu.id")

	if filter.PartID != uuid.Nil {
		q = q.Where(sq.Eq{"pu.part_id": filter.PartID})
	}
	if filter.EmployeeID != uuid.Nil {
		q = q.Where(sq.Eq{"pu.employee_id": filter.EmployeeID})
	}
	if filter.CustomerID != uuid.Nil {
		q = q.Where(sq.Eq{"pu.customer_id": filter.CustomerID})
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

	out := make([]model.Purchase, 0)
	for rows.Next() {
		var row purchaseRow
		if err := rows.Scan(row.scanDestWithNames()...); err != nil {
			return nil, err
		}
		out = append(out, *rowToModel(&row))
	}

	return out, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.Delete("purchases").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPurchaseNotFound
	}

	return nil
}

func (r *repository) selectWithNames() sq.SelectBuilder {
	return r.sb.
		Select(purchaseColumnsWithNames...).
		From("purchases pu").
		LeftJoin("parts p ON p.id = pu.part_id").
		LeftJoin("accounts e ON e.id = pu.employee_id").
		LeftJoin("accounts c ON c.id = pu.customer_id")
}
