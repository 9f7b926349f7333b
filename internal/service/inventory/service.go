package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type PartRepository interface {
	Create(ctx context.Context, part *model.Part) (uuid.UUID, error)
	PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
	PartForUpdate(ctx context.Context, id uuid.UUID) (*model.Part, error)
	List(ctx context.Context, filter model.PartFilter) ([]model.Part, error)
	Update(ctx context.Context, part *model.Part) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PurchaseRepository interface {
	ByKeyForUpdate(ctx context.Context, partID, employeeID, customerID uuid.UUID) (*model.Purchase, error)
	Create(ctx context.Context, p *model.Purchase) (uuid.UUID, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int64, total decimal.Decimal) error
	PurchaseByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context, filter model.PurchaseFilter) ([]model.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountReader interface {
	AccountByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type TxManager interface {
	ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	parts     PartRepository
	purchases PurchaseRepository
	accounts  AccountReader
	tx        TxManager
	now       func() time.Time

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInventoryService(
	parts PartRepository,
	purchases PurchaseRepository,
	accounts AccountReader,
	tx TxManager,
	now func() time.Time,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	if now == nil {
		now = time.Now
	}
	return &service{
		parts:          parts,
		purchases:      purchases,
		accounts:       accounts,
		tx:             tx,
		now:            now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) CreatePart(ctx context.Context, params model.PartParams) (*model.Part, error) {
	const op string = "inventory.service.CreatePart"
	log := logger.With(logger.String("name", params.Name))

	params = normalizePart(params)
	if err := params.Validate(); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	part := partFromParams(params)
	id, err := svc.parts.Create(wdbCtx, part)
	if err != nil {
		log.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	part.ID = id

	return part, nil
}

func (svc *service) Part(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	const op string = "inventory.service.Part"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	part, err := svc.parts.PartByID(rdbCtx, id)
	if err != nil {
		logger.Error(ctx, "repository part by id", logger.String("part_id", id.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (svc *service) ListParts(ctx context.Context, filter model.PartFilter) ([]model.Part, error) {
	const op string = "inventory.service.ListParts"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	parts, err := svc.parts.List(rdbCtx, filter)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parts, nil
}

func (svc *service) UpdatePart(ctx context.Context, id uuid.UUID, params model.PartParams) (*model.Part, error) {
	const op string = "inventory.service.UpdatePart"
	log := logger.With(logger.String("part_id", id.String()))

	params = normalizePart(params)
	if err := params.Validate(); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	part := partFromParams(params)
	part.ID = id
	if err := svc.parts.Update(wdbCtx, part); err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (svc *service) DeletePart(ctx context.Context, id uuid.UUID) error {
	const op string = "inventory.service.DeletePart"

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.parts.Delete(wdbCtx, id); err != nil {
		logger.Error(ctx, "repository delete part", logger.String("part_id", id.String()), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RecordPurchase merges the purchase into the existing row for the same
// part, employee and customer, or creates it. Stock goes down by the
// requested quantity only. The part row is locked for the whole unit of
// work, so concurrent purchases of one part run one after another.
func (svc *service) RecordPurchase(ctx context.Context, params model.RecordPurchaseParams) (*model.Purchase, error) {
	const op string = "inventory.service.RecordPurchase"
	log := logger.With(
		logger.String("part_id", params.PartID.String()),
		logger.String("employee_id", params.EmployeeID.String()),
		logger.String("customer_id", params.CustomerID.String()),
		logger.Int64("quantity", params.Quantity),
	)

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := svc.checkParticipants(ctx, params.EmployeeID, params.CustomerID); err != nil {
		log.Warn(ctx, "participants check", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	var out *model.Purchase
	err := svc.tx.ReadCommitted(wdbCtx, func(ctx context.Context) error {
		part, err := svc.parts.PartForUpdate(ctx, params.PartID)
		if err != nil {
			return err
		}

		if part.StockQuantity < params.Quantity {
			return fmt.Errorf("%w: requested %d, available %d",
				model.ErrInsufficientStock, params.Quantity, part.StockQuantity)
		}

		existing, err := svc.purchases.ByKeyForUpdate(ctx, params.PartID, params.EmployeeID, params.CustomerID)
		switch {
		case errors.Is(err, model.ErrPurchaseNotFound):
			p := &model.Purchase{
				PartID:      params.PartID,
				EmployeeID:  params.EmployeeID,
				CustomerID:  params.CustomerID,
				Quantity:    params.Quantity,
				TotalPrice:  lineTotal(part.UnitPrice, params.Quantity),
				PurchasedAt: svc.now(),
			}
			if p.ID, err = svc.purchases.Create(ctx, p); err != nil {
				return err
			}
			out = p
		case err != nil:
			return err
		default:
			existing.Quantity += params.Quantity
			existing.TotalPrice = lineTotal(part.UnitPrice, existing.Quantity)
			if err := svc.purchases.UpdateQuantity(ctx, existing.ID, existing.Quantity, existing.TotalPrice); err != nil {
				return err
			}
			out = existing
		}
		out.PartName, out.PartUnitPrice = part.Name, part.UnitPrice

		return svc.parts.UpdateStock(ctx, part.ID, part.StockQuantity-params.Quantity)
	})
	if err != nil {
		log.Error(ctx, "record purchase", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "purchase recorded",
		logger.String("purchase_id", out.ID.String()),
		logger.Int64("cumulative_quantity", out.Quantity),
	)

	return out, nil
}

func (svc *service) ListPurchases(ctx context.Context, filter model.PurchaseFilter) ([]model.Purchase, error) {
	const op string = "inventory.service.ListPurchases"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	list, err := svc.purchases.List(rdbCtx, filter)
	if err != nil {
		logger.Error(ctx, "repository list purchases", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (svc *service) Purchase(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	const op string = "inventory.service.Purchase"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	p, err := svc.purchases.PurchaseByID(rdbCtx, id)
	if err != nil {
		logger.Error(ctx, "repository purchase by id", logger.String("purchase_id", id.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// DeletePurchase removes the row without returning stock to the part.
func (svc *service) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	const op string = "inventory.service.DeletePurchase"

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.purchases.Delete(wdbCtx, id); err != nil {
		logger.Error(ctx, "repository delete purchase", logger.String("purchase_id", id.String()), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) checkParticipants(ctx context.Context, employeeID, customerID uuid.UUID) error {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	employee, err := svc.accounts.AccountByID(rdbCtx, employeeID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrEmployeeNotFound
	case err != nil:
		return err
	case employee.Role != model.RoleEmployee && employee.Role != model.RoleAdmin:
		return model.FieldError("employee_id", "account is not staff")
	}

	customer, err := svc.accounts.AccountByID(rdbCtx, customerID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrCustomerNotFound
	case err != nil:
		return err
	case !customer.IsCustomer():
		return model.FieldError("customer_id", "account is not a customer")
	}

	return nil
}

func lineTotal(unit decimal.Decimal, quantity int64) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(quantity)).Round(2)
}

func normalizePart(p model.PartParams) model.PartParams {
	p.Name = strings.TrimSpace(p.Name)
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	if p.CompanyName == "" {
		p.CompanyName = model.DefaultCompanyName
	}
	return p
}

func partFromParams(p model.PartParams) *model.Part {
	return &model.Part{
		Name:           p.Name,
		UnitPrice:      p.UnitPrice,
		StockQuantity:  p.StockQuantity,
		ManufacturedOn: p.ManufacturedOn,
		ExpiresOn:      p.ExpiresOn,
		CompanyName:    p.CompanyName,
		Description:    p.Description,
	}
}
