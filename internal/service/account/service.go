package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type AccountRepository interface {
	Create(ctx context.Context, acc *model.Account) (uuid.UUID, error)
	AccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	List(ctx context.Context, filter model.AccountFilter) ([]model.Account, error)
	Update(ctx context.Context, acc *model.Account) error
}

type service struct {
	repo           AccountRepository
	bcryptCost     int
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewAccountService(
	repo AccountRepository,
	bcryptCost int,
	now func() time.Time,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	if now == nil {
		now = time.Now
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:           repo,
		bcryptCost:     bcryptCost,
		now:            now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Register creates an admin, employee or customer account. Employees start
// with empty workload counters and customers with empty loyalty counters.
func (svc *service) Register(ctx context.Context, params model.RegisterAccountParams) (*model.Account, error) {
	const op string = "account.service.Register"

	params.Email = strings.ToLower(strings.TrimSpace(params.Email))
	params.Name = strings.TrimSpace(params.Name)
	log := logger.With(
		logger.String("role", string(params.Role)),
		logger.String("email", params.Email),
	)

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), svc.bcryptCost)
	if err != nil {
		log.Error(ctx, "hash password", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	joined := svc.now()
	if params.JoinedAt != nil {
		joined = *params.JoinedAt
	}

	acc := &model.Account{
		Role:           params.Role,
		Name:           params.Name,
		Email:          params.Email,
		PasswordHash:   string(hash),
		Salary:         params.Salary,
		IsActive:       params.LastWorkingDay == nil,
		JoinedAt:       joined,
		LastWorkingDay: params.LastWorkingDay,
	}
	switch params.Role {
	case model.RoleEmployee:
		acc.Workload = &model.Workload{}
	case model.RoleCustomer:
		acc.Loyalty = &model.Loyalty{}
	case model.RoleAdmin:
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, acc)
	if err != nil {
		log.Error(ctx, "repository create account", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	acc.ID = id

	log.Info(ctx, "account registered", logger.String("account_id", id.String()))

	return acc, nil
}

func (svc *service) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	const op string = "account.service.Get"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	acc, err := svc.repo.AccountByID(rdbCtx, id)
	if err != nil {
		logger.Error(ctx, "repository account by id", logger.String("account_id", id.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return acc, nil
}

func (svc *service) List(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	const op string = "account.service.List"

	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.FieldError("role", "must be one of admin, employee, customer"))
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	list, err := svc.repo.List(rdbCtx, filter)
	if err != nil {
		logger.Error(ctx, "repository list accounts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// Update patches an account. Setting a last working day deactivates it.
func (svc *service) Update(ctx context.Context, id uuid.UUID, params model.UpdateAccountParams) (*model.Account, error) {
	const op string = "account.service.Update"
	log := logger.With(logger.String("account_id", id.String()))

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	acc, err := svc.repo.AccountByID(rdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository account by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := params.Validate(acc.Role); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.Name != nil {
		acc.Name = strings.TrimSpace(*params.Name)
	}
	if params.Email != nil {
		acc.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Salary != nil {
		acc.Salary = params.Salary
	}
	if params.IsActive != nil {
		acc.IsActive = *params.IsActive
	}
	if params.LastWorkingDay != nil {
		if params.LastWorkingDay.Before(acc.JoinedAt) {
			return nil, fmt.Errorf("%s: %w", op, model.FieldError("last_working_day", "must not be before joined date"))
		}
		acc.LastWorkingDay = params.LastWorkingDay
		acc.IsActive = false
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Update(wdbCtx, acc); err != nil {
		log.Error(ctx, "repository update account", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return acc, nil
}
