package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
	"github.com/you-humble/carwash/platform/db/txmanager"
)

const (
	constraintEmail = "accounts_email_key"
	constraintName  = "accounts_name_key"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewAccountRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the account together with its workload or loyalty row in a
// single statement.
func (r *repository) Create(ctx context.Context, acc *model.Account) (uuid.UUID, error) {
	q := r.sb.
		Insert("accounts").
		Columns("role", "name", "email", "password_hash", "salary_cents", "is_active", "joined_at", "last_working_day").
		Values(acc.Role, acc.Name, acc.Email, acc.PasswordHash, pgutil.CentsPtr(acc.Salary),
			acc.IsActive, acc.JoinedAt, acc.LastWorkingDay).
		Suffix("RETURNING id")

	insertSQL, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	sqlStr := insertSQL
	switch {
	case acc.Workload != nil:
		sqlStr = fmt.Sprintf(
			"WITH a AS (%s) INSERT INTO employee_workloads (account_id, in_hand, finished) "+
				"SELECT id, %d, %d FROM a RETURNING account_id",
			insertSQL, acc.Workload.InHand, acc.Workload.Finished)
	case acc.Loyalty != nil:
		sqlStr = fmt.Sprintf(
			"WITH a AS (%s) INSERT INTO customer_loyalty (account_id, discount_remaining, free_services_used) "+
				"SELECT id, %d, %d FROM a RETURNING account_id",
			insertSQL, acc.Loyalty.DiscountRemaining, acc.Loyalty.FreeServicesUsed)
	}

	var id uuid.UUID
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, mapUnique(err)
	}

	return id, nil
}

func (r *repository) AccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	q := r.selectAccounts().Where(sq.Eq{"a.id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var row accountRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

func (r *repository) List(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	q := r.selectAccounts().OrderBy("a.name")

	if filter.Role != "" {
		q = q.Where(sq.Eq{"a.role": filter.Role})
	}
	if filter.NameContains != "" {
		q = q.Where(sq.ILike{"a.name": pgutil.Contains(filter.NameContains)})
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

	out := make([]model.Account, 0)
	for rows.Next() {
		var row accountRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, err
		}
		out = append(out, *rowToModel(&row))
	}

	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, acc *model.Account) error {
	if acc.ID == uuid.Nil {
		return errors.New("empty account id")
	}

	q := r.sb.
		Update("accounts").
		SetMap(sq.Eq{
			"name":             acc.Name,
			"email":            acc.Email,
			"salary_cents":     pgutil.CentsPtr(acc.Salary),
			"is_active":        acc.IsActive,
			"last_working_day": acc.LastWorkingDay,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": acc.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapUnique(err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// LoyaltyForUpdate locks the customer's loyalty row until the surrounding
// transaction ends.
func (r *repository) LoyaltyForUpdate(ctx context.Context, customerID uuid.UUID) (model.Loyalty, error) {
	q := r.sb.
		Select("discount_remaining", "free_services_used").
		From("customer_loyalty").
		Where(sq.Eq{"account_id": customerID}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.Loyalty{}, err
	}

	var l model.Loyalty
	err = txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&l.DiscountRemaining, &l.FreeServicesUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loyalty{}, model.ErrCustomerNotFound
		}
		return model.Loyalty{}, err
	}

	return l, nil
}

func (r *repository) UpdateLoyalty(ctx context.Context, customerID uuid.UUID, l model.Loyalty) error {
	q := r.sb.
		Update("customer_loyalty").
		Set("discount_remaining", l.DiscountRemaining).
		Set("free_services_used", l.FreeServicesUsed).
		Where(sq.Eq{"account_id": customerID})

	return r.execOne(ctx, q, model.ErrCustomerNotFound)
}

// WorkloadForUpdate locks the employee's workload row until the surrounding
// transaction ends.
func (r *repository) WorkloadForUpdate(ctx context.Context, employeeID uuid.UUID) (model.Workload, error) {
	q := r.sb.
		Select("in_hand", "finished").
		From("employee_workloads").
		Where(sq.Eq{"account_id": employeeID}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.Workload{}, err
	}

	var w model.Workload
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&w.InHand, &w.Finished); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Workload{}, model.ErrEmployeeNotFound
		}
		return model.Workload{}, err
	}

	return w, nil
}

func (r *repository) UpdateWorkload(ctx context.Context, employeeID uuid.UUID, w model.Workload) error {
	q := r.sb.
		Update("employee_workloads").
		Set("in_hand", w.InHand).
		Set("finished", w.Finished).
		Where(sq.Eq{"account_id": employeeID})

	return r.execOne(ctx, q, model.ErrEmployeeNotFound)
}

func (r *repository) selectAccounts() sq.SelectBuilder {
	return r.sb.
		Select(accountColumns...).
		From("accounts a").
		LeftJoin("employee_workloads w ON w.account_id = a.id").
		LeftJoin("customer_loyalty l ON l.account_id = a.id")
}

func (r *repository) execOne(ctx context.Context, q sq.UpdateBuilder, notFound error) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return notFound
	}

	return nil
}

func mapUnique(err error) error {
	switch txmanager.ConstraintName(err) {
	case constraintEmail:
		return model.ErrDuplicateEmail
	case constraintName:
		return model.ErrDuplicateName
	default:
		return txmanager.Classify(err)
	}
}
