// Package loyalty decides the discount a customer gets from their completed
// service history and keeps the customer's loyalty counters in step.
package loyalty

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/pricing"
	"github.com/you-humble/carwash/platform/logger"
)

type CustomerRepository interface {
	LoyaltyForUpdate(ctx context.Context, customerID uuid.UUID) (model.Loyalty, error)
	UpdateLoyalty(ctx context.Context, customerID uuid.UUID, l model.Loyalty) error
}

type CompletedCounter interface {
	CountCompleted(ctx context.Context, customerID uuid.UUID) (int, error)
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type engine struct {
	customers CustomerRepository
	jobs      CompletedCounter
	tx        TxManager
}

func NewEngine(customers CustomerRepository, jobs CompletedCounter, tx TxManager) *engine {
	return &engine{customers: customers, jobs: jobs, tx: tx}
}

// Compute returns the discount for the customer's next service and records
// it. A pending free-service award is consumed. The completed count is read
// from the job ledger on every call.
func (e *engine) Compute(ctx context.Context, customerID uuid.UUID) (int, error) {
	const op = "loyalty.engine.Compute"
	return e.decide(ctx, op, customerID, true)
}

// Refresh recomputes discount_remaining without consuming a free-service
// award, so the award stays available for the next priced service.
func (e *engine) Refresh(ctx context.Context, customerID uuid.UUID) (int, error) {
	const op = "loyalty.engine.Refresh"
	return e.decide(ctx, op, customerID, false)
}

// Spend zeroes discount_remaining once a discount has been charged.
func (e *engine) Spend(ctx context.Context, customerID uuid.UUID) error {
	const op = "loyalty.engine.Spend"

	err := e.tx.ReadCommitted(ctx, func(ctx context.Context) error {
		l, err := e.customers.LoyaltyForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		if l.DiscountRemaining == 0 {
			return nil
		}
		l.DiscountRemaining = 0
		return e.customers.UpdateLoyalty(ctx, customerID, l)
	})
	if err != nil {
		logger.Error(ctx, "spend discount", logger.String("customer_id", customerID.String()), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (e *engine) decide(ctx context.Context, op string, customerID uuid.UUID, consume bool) (int, error) {
	log := logger.With(
		logger.String("customer_id", customerID.String()),
		logger.Bool("consume", consume),
	)

	var discount int
	err := e.tx.ReadCommitted(ctx, func(ctx context.Context) error {
		l, err := e.customers.LoyaltyForUpdate(ctx, customerID)
		if err != nil {
			return err
		}

		completed, err := e.jobs.CountCompleted(ctx, customerID)
		if err != nil {
			return err
		}

		d := pricing.Decide(completed, l.FreeServicesUsed)
		discount = d.Discount

		next := model.Loyalty{DiscountRemaining: d.Discount, FreeServicesUsed: l.FreeServicesUsed}
		if consume {
			next.FreeServicesUsed = d.FreeServicesUsed
		}
		if next == l {
			return nil
		}

		log.Debug(ctx, "loyalty updated",
			logger.Int("completed", completed),
			logger.Int("discount", d.Discount),
			logger.Bool("free", d.Free),
		)
		return e.customers.UpdateLoyalty(ctx, customerID, next)
	})
	if err != nil {
		log.Error(ctx, "compute discount", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return discount, nil
}
