package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is unique per (part, employee, customer); repeat purchases merge into it.
type Purchase struct {
	ID          uuid.UUID
	PartID      uuid.UUID
	EmployeeID  uuid.UUID
	CustomerID  uuid.UUID
	Quantity    int64
	TotalPrice  decimal.Decimal
	PurchasedAt time.Time

	PartName      string
	PartUnitPrice decimal.Decimal
	EmployeeName  string
	CustomerName  string
}

type RecordPurchaseParams struct {
	PartID     uuid.UUID
	EmployeeID uuid.UUID
	CustomerID uuid.UUID
	Quantity   int64
}

func (p RecordPurchaseParams) Validate() error {
	v := NewValidationError()
	if p.PartID == uuid.Nil {
		v.Add("part_id", "part is required")
	}
	if p.EmployeeID == uuid.Nil {
		v.Add("employee_id", "employee is required")
	}
	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "customer is required")
	}
	if p.Quantity < 1 {
		v.Add("quantity", "must be at least 1")
	}
	return v.OrNil()
}

type PurchaseFilter struct {
	PartID     uuid.UUID
	EmployeeID uuid.UUID
	CustomerID uuid.UUID
}
