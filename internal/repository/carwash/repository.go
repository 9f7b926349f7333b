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

const constraintInProgress = "services_in_progress_vehicle_type_key"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewJobRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, job *model.Job) (uuid.UUID, error) {
	q := r.sb.
		Insert("services").
		Columns("service_type", "status", "vehicle_number", "customer_id", "employee_id",
			"discount_percent", "final_price_cents", "started_at", "ended_at").
		Values(job.ServiceType, job.Status, job.VehicleNumber, job.CustomerID, job.EmployeeID,
			job.DiscountPercent, pgutil.CentsPtr(job.FinalPrice), job.StartedAt, job.EndedAt).
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

func (r *repository) JobByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	q := r.selectWithNames().Where(sq.Eq{"s.id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var row jobRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDestWithNames()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrJobNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

// JobForUpdate locks the job row until the surrounding transaction ends.
// Name projections are left empty.
func (r *repository) JobForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	q := r.sb.
		Select(jobColumns...).
		From("services s").
		Where(sq.Eq{"s.id": id}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var row jobRow
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(row.scanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrJobNotFound
		}
		return nil, err
	}

	return rowToModel(&row), nil
}

func (r *repository) InProgressExists(
	ctx context.Context,
	vehicle string,
	serviceType model.ServiceType,
	excludeID uuid.UUID,
) (bool, error) {
	q := r.sb.
		Select("1").
		From("services").
		Where(sq.Eq{
			"vehicle_number": vehicle,
			"service_type":   serviceType,
			"status":         model.JobInProgress,
		}).
		Limit(1)
	if excludeID != uuid.Nil {
		q = q.Where(sq.NotEq{"id": excludeID})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&one)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}

	return true, nil
}

func (r *repository) Update(ctx context.Context, job *model.Job) error {
	if job.ID == uuid.Nil {
		return errors.New("empty job id")
	}

	q := r.sb.
		Update("services").
		SetMap(sq.Eq{
			"service_type":      job.ServiceType,
			"status":            job.Status,
			"vehicle_number":    job.VehicleNumber,
			"employee_id":       job.EmployeeID,
			"discount_percent":  job.DiscountPercent,
			"final_price_cents": pgutil.CentsPtr(job.FinalPrice),
			"ended_at":          job.EndedAt,
		}).
		Where(sq.Eq{"id": job.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapUnique(err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrJobNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	q := applyFilter(r.selectWithNames(), filter).OrderBy("s.started_at", "s.id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := txmanager.Q(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Job, 0)
	for rows.Next() {
		var row jobRow
		if err := rows.Scan(row.scanDestWithNames()...); err != nil {
			return nil, err
		}
		out = append(out, *rowToModel(&row))
	}

	return out, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := r.sb.Delete("services").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ct, err := txmanager.Q(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrJobNotFound
	}

	return nil
}

// CountCompleted returns how many completed jobs the customer has.
func (r *repository) CountCompleted(ctx context.Context, customerID uuid.UUID) (int, error) {
	q := r.sb.
		Select("count(*)").
		From("services").
		Where(sq.Eq{"customer_id": customerID, "status": model.JobCompleted})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := txmanager.Q(ctx, r.pool).QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *repository) selectWithNames() sq.SelectBuilder {
	return r.sb.
		Select(jobColumnsWithNames...).
		From("services s").
		LeftJoin("accounts c ON c.id = s.customer_id").
		LeftJoin("accounts e ON e.id = s.employee_id")
}

func applyFilter(q sq.SelectBuilder, f model.JobFilter) sq.SelectBuilder {
	if f.ID != uuid.Nil {
		q = q.Where(sq.Eq{"s.id": f.ID})
	}
	if f.CustomerNameContains != "" {
		q = q.Where(sq.ILike{"c.name": pgutil.Contains(f.CustomerNameContains)})
	}
	if f.EmployeeNameContains != "" {
		q = q.Where(sq.ILike{"e.name": pgutil.Contains(f.EmployeeNameContains)})
	}
	if f.VehiclePrefix != "" {
		q = q.Where(sq.ILike{"s.vehicle_number": pgutil.Prefix(f.VehiclePrefix)})
	}
	if f.ServiceTypePrefix != "" {
		q = q.Where(sq.ILike{"s.service_type": pgutil.Prefix(f.ServiceTypePrefix)})
	}
	if f.EmployeeNamePrefix != "" {
		q = q.Where(sq.ILike{"e.name": pgutil.Prefix(f.EmployeeNamePrefix)})
	}
	if f.CustomerNamePrefix != "" {
		q = q.Where(sq.ILike{"c.name": pgutil.Prefix(f.CustomerNamePrefix)})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"s.status": *f.Status})
	}
	if f.StartedFrom != nil {
		q = q.Where(sq.GtOrEq{"s.started_at": *f.StartedFrom})
	}
	if f.StartedTo != nil {
		q = q.Where(sq.Lt{"s.started_at": *f.StartedTo})
	}
	return q
}

func mapUnique(err error) error {
	if txmanager.ConstraintName(err) == constraintInProgress {
		return model.ErrJobInProgress
	}
	return txmanager.Classify(err)
}
