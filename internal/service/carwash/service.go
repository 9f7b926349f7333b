package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/pricing"
	"github.com/you-humble/carwash/platform/logger"
)

type JobRepository interface {
	Create(ctx context.Context, job *model.Job) (uuid.UUID, error)
	JobByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	JobForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error)
	InProgressExists(ctx context.Context, vehicle string, serviceType model.ServiceType, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, job *model.Job) error
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountReader interface {
	AccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type DiscountEngine interface {
	Compute(ctx context.Context, customerID uuid.UUID) (int, error)
	Refresh(ctx context.Context, customerID uuid.UUID) (int, error)
	Spend(ctx context.Context, customerID uuid.UUID) error
}

type WorkloadAggregator interface {
	Apply(ctx context.Context, ev model.WorkloadEvent) error
}

type CompletionNotifier interface {
	NotifyCompletion(ctx context.Context, notice model.CompletionNotice) error
}

type EventPublisher interface {
	PublishJobCompleted(ctx context.Context, ev model.JobCompletedEvent) error
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	jobs      JobRepository
	accounts  AccountReader
	discounts DiscountEngine
	workload  WorkloadAggregator
	notifier  CompletionNotifier
	publisher EventPublisher
	tx        TxManager
	now       func() time.Time

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCarwashService(
	jobs JobRepository,
	accounts AccountReader,
	discounts DiscountEngine,
	workload WorkloadAggregator,
	notifier CompletionNotifier,
	publisher EventPublisher,
	tx TxManager,
	now func() time.Time,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	if now == nil {
		now = time.Now
	}
	return &service{
		jobs:           jobs,
		accounts:       accounts,
		discounts:      discounts,
		workload:       workload,
		notifier:       notifier,
		publisher:      publisher,
		tx:             tx,
		now:            now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateJobParams) (*model.CreateJobResult, error) {
	const op string = "carwash.service.Create"
	log := logger.With(
		logger.String("vehicle_number", params.VehicleNumber),
		logger.String("service_type", string(params.ServiceType)),
		logger.String("customer_id", params.CustomerID.String()),
	)

	if err := validateCreate(params); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := svc.customer(ctx, params.CustomerID); err != nil {
		log.Warn(ctx, "customer check", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if params.EmployeeID != nil {
		if _, err := svc.employee(ctx, *params.EmployeeID); err != nil {
			log.Warn(ctx, "employee check", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	var res model.CreateJobResult
	err := svc.tx.ReadCommitted(wdbCtx, func(ctx context.Context) error {
		busy, err := svc.jobs.InProgressExists(ctx, params.VehicleNumber, params.ServiceType, uuid.Nil)
		if err != nil {
			return err
		}
		if busy {
			return model.ErrJobInProgress
		}

		discount, err := svc.discounts.Compute(ctx, params.CustomerID)
		if err != nil {
			return err
		}
		price := pricing.Quote(params.ServiceType, discount)

		if params.EmployeeID != nil {
			if err := svc.workload.Apply(ctx, model.WorkloadEvent{
				Kind:       model.WorkloadJobStarted,
				EmployeeID: *params.EmployeeID,
			}); err != nil {
				return err
			}
		}

		id, err := svc.jobs.Create(ctx, &model.Job{
			ServiceType:     params.ServiceType,
			Status:          model.JobInProgress,
			VehicleNumber:   params.VehicleNumber,
			CustomerID:      params.CustomerID,
			EmployeeID:      params.EmployeeID,
			DiscountPercent: price.Discount,
			FinalPrice:      &price.Final,
			StartedAt:       svc.now(),
		})
		if err != nil {
			return err
		}

		if err := svc.discounts.Spend(ctx, params.CustomerID); err != nil {
			return err
		}

		res = model.CreateJobResult{ID: id, Price: price}
		return nil
	})
	if err != nil {
		log.Error(ctx, "create job", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "job created",
		logger.String("job_id", res.ID.String()),
		logger.Int("discount", res.Discount),
		logger.String("final_price", res.Final.StringFixed(2)),
	)

	return &res, nil
}

// Update applies a partial update. Moving a job to completed stamps the end
// time, settles the employee's workload and notifies the customer after the
// transaction commits. A completed job rejects any status change.
func (svc *service) Update(
	ctx context.Context,
	id uuid.UUID,
	params model.UpdateJobParams,
) (*model.UpdateJobResult, error) {
	const op string = "carwash.service.Update"
	log := logger.With(logger.String("job_id", id.String()))

	if err := validateUpdate(params); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.EmployeeID != nil {
		if _, err := svc.employee(ctx, *params.EmployeeID); err != nil {
			log.Warn(ctx, "employee check", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	var (
		job        *model.Job
		price      model.Price
		completing bool
	)
	err := svc.tx.ReadCommitted(wdbCtx, func(ctx context.Context) error {
		cur, err := svc.jobs.JobForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if cur.Status == model.JobCompleted && params.Status != nil {
			return model.ErrJobCompleted
		}
		completing = params.Status != nil && *params.Status == model.JobCompleted

		next := *cur
		if params.ServiceType != nil {
			next.ServiceType = *params.ServiceType
		}
		if params.VehicleNumber != nil {
			next.VehicleNumber = *params.VehicleNumber
		}

		assigned := false
		if params.EmployeeID != nil {
			switch {
			case cur.EmployeeID != nil && *cur.EmployeeID == *params.EmployeeID:
			case cur.EmployeeID != nil:
				return model.FieldError("employee_id", "service already has an employee assigned")
			case cur.Status == model.JobCompleted:
				return model.FieldError("employee_id", "cannot assign an employee to a completed service")
			default:
				next.EmployeeID = params.EmployeeID
				assigned = true
			}
		}

		if completing && next.EmployeeID == nil {
			return model.FieldError("employee_id", "assign an employee before completing the service")
		}

		keyChanged := next.VehicleNumber != cur.VehicleNumber || next.ServiceType != cur.ServiceType
		if cur.Status == model.JobInProgress && !completing && keyChanged {
			busy, err := svc.jobs.InProgressExists(ctx, next.VehicleNumber, next.ServiceType, cur.ID)
			if err != nil {
				return err
			}
			if busy {
				return model.ErrJobInProgress
			}
		}

		price = pricing.Quote(next.ServiceType, cur.DiscountPercent)
		if next.ServiceType != cur.ServiceType {
			discount := cur.DiscountPercent
			// A free service already granted to this job stays granted.
			if cur.Status == model.JobInProgress && discount != pricing.FreeDiscount {
				if discount, err = svc.discounts.Compute(ctx, cur.CustomerID); err != nil {
					return err
				}
				if err := svc.discounts.Spend(ctx, cur.CustomerID); err != nil {
					return err
				}
			}
			price = pricing.Quote(next.ServiceType, discount)
			next.DiscountPercent = discount
			next.FinalPrice = &price.Final
		}

		if completing {
			end := svc.now()
			next.Status = model.JobCompleted
			next.EndedAt = &end
		}

		if err := svc.jobs.Update(ctx, &next); err != nil {
			return err
		}

		// job, customer, employee: the same lock order as Create.
		if completing {
			if _, err := svc.discounts.Refresh(ctx, cur.CustomerID); err != nil {
				return err
			}
		}

		if assigned {
			if err := svc.workload.Apply(ctx, model.WorkloadEvent{
				Kind:       model.WorkloadJobStarted,
				EmployeeID: *next.EmployeeID,
			}); err != nil {
				return err
			}
		}

		if completing {
			if err := svc.workload.Apply(ctx, model.WorkloadEvent{
				Kind:       model.WorkloadJobCompleted,
				EmployeeID: *next.EmployeeID,
			}); err != nil {
				return err
			}
		}

		job = &next
		return nil
	})
	if err != nil {
		log.Error(ctx, "update job", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &model.UpdateJobResult{Job: job, Price: price}
	if completing {
		svc.afterCompletion(ctx, job, price, res)
	}

	return res, nil
}

// afterCompletion runs once the completion is committed. Failures here are
// logged and reported, never returned.
func (svc *service) afterCompletion(ctx context.Context, job *model.Job, price model.Price, res *model.UpdateJobResult) {
	log := logger.With(logger.String("job_id", job.ID.String()))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	customer, err := svc.accounts.AccountByID(rdbCtx, job.CustomerID)
	if err != nil {
		log.Error(ctx, "load customer for notification", logger.ErrorF(err))
		res.Notification, res.NotificationError = model.NotificationFailed, err.Error()
		return
	}
	employee, err := svc.accounts.AccountByID(rdbCtx, *job.EmployeeID)
	if err != nil {
		log.Error(ctx, "load employee for notification", logger.ErrorF(err))
		res.Notification, res.NotificationError = model.NotificationFailed, err.Error()
		return
	}

	res.Notification = model.NotificationSent
	if svc.notifier == nil {
		res.Notification = model.NotificationDisabled
	} else if err := svc.notifier.NotifyCompletion(ctx, model.CompletionNotice{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ServiceType:   job.ServiceType,
		VehicleNumber: job.VehicleNumber,
		EmployeeName:  employee.Name,
		EmployeeEmail: employee.Email,
		Price:         price,
	}); err != nil {
		log.Warn(ctx, "completion notification failed", logger.ErrorF(err))
		res.Notification, res.NotificationError = model.NotificationFailed, err.Error()
	}

	if svc.publisher == nil {
		return
	}
	if err := svc.publisher.PublishJobCompleted(ctx, model.JobCompletedEvent{
		EventID:       uuid.New(),
		JobID:         job.ID,
		ServiceType:   job.ServiceType,
		VehicleNumber: job.VehicleNumber,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		EmployeeID:    employee.ID,
		EmployeeName:  employee.Name,
		BasePrice:     price.Base,
		Discount:      price.Discount,
		FinalPrice:    price.Final,
		StartedAt:     job.StartedAt,
		EndedAt:       *job.EndedAt,
	}); err != nil {
		log.Warn(ctx, "publish job completed", logger.ErrorF(err))
	}
}

func (svc *service) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	const op string = "carwash.service.Get"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	job, err := svc.jobs.JobByID(rdbCtx, id)
	if err != nil {
		logger.Error(ctx, "repository job by id", logger.String("job_id", id.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return job, nil
}

func (svc *service) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	const op string = "carwash.service.List"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	jobs, err := svc.jobs.List(rdbCtx, filter)
	if err != nil {
		logger.Error(ctx, "repository list jobs", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return jobs, nil
}

// Delete removes the job row only. Workload and loyalty counters are left as they are.
func (svc *service) Delete(ctx context.Context, id uuid.UUID) error {
	const op string = "carwash.service.Delete"

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.jobs.Delete(wdbCtx, id); err != nil {
		logger.Error(ctx, "repository delete job", logger.String("job_id", id.String()), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) customer(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	acc, err := svc.accounts.AccountByID(rdbCtx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil, model.ErrCustomerNotFound
	case err != nil:
		return nil, err
	case !acc.IsCustomer():
		return nil, model.FieldError("customer_id", "account is not a customer")
	case !acc.IsActive:
		return nil, model.FieldError("customer_id", "customer account is inactive")
	}
	return acc, nil
}

func (svc *service) employee(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	acc, err := svc.accounts.AccountByID(rdbCtx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil, model.ErrEmployeeNotFound
	case err != nil:
		return nil, err
	case !acc.IsEmployee():
		return nil, model.FieldError("employee_id", "account is not an employee")
	case !acc.IsActive:
		return nil, model.FieldError("employee_id", "employee account is inactive")
	}
	return acc, nil
}
