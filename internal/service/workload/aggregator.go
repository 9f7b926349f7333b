// Package workload keeps employee in-hand and finished counters by applying
// job events.
package workload

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type EmployeeRepository interface {
	WorkloadForUpdate(ctx context.Context, employeeID uuid.UUID) (model.Workload, error)
	UpdateWorkload(ctx context.Context, employeeID uuid.UUID, w model.Workload) error
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type aggregator struct {
	employees EmployeeRepository
	tx        TxManager
}

func NewAggregator(employees EmployeeRepository, tx TxManager) *aggregator {
	return &aggregator{employees: employees, tx: tx}
}

func (a *aggregator) Apply(ctx context.Context, ev model.WorkloadEvent) error {
	const op = "workload.aggregator.Apply"
	log := logger.With(
		logger.String("employee_id", ev.EmployeeID.String()),
		logger.Int("kind", int(ev.Kind)),
	)

	if ev.EmployeeID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, model.FieldError("employee_id", "employee is required"))
	}

	err := a.tx.ReadCommitted(ctx, func(ctx context.Context) error {
		w, err := a.employees.WorkloadForUpdate(ctx, ev.EmployeeID)
		if err != nil {
			return err
		}
		return a.employees.UpdateWorkload(ctx, ev.EmployeeID, w.Apply(ev))
	})
	if err != nil {
		log.Error(ctx, "apply workload event", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
