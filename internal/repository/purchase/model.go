package repository

import (
	"time"

	"github.com/google/uuid"
)

type purchaseRow struct {
	ID              uuid.UUID
	PartID          uuid.UUID
	EmployeeID      uuid.UUID
	CustomerID      uuid.UUID
	Quantity        int64
	TotalPriceCents int64
	PurchasedAt     time.Time

	PartName           *string
	PartUnitPriceCents *int64
	EmployeeName       *string
	CustomerName       *string
}

var purchaseColumns = []string{
	"pu.id", "pu.part_id", "pu.employee_id", "pu.customer_id", "pu.quantity",
	"pu.total_price_cents", "pu.purchased_at",
}

var purchaseColumnsWithNames = append(append([]string{}, purchaseColumns...), "p.name", "p.unit_price_cents", "e.name", "c.name")

func (r *purchaseRow) scanDest() []any {
	return []any{
		&r.ID, &r.PartID, &r.EmployeeID, &r.CustomerID, &r.Quantity,
		&r.TotalPriceCents, &r.PurchasedAt,
	}
}

func (r *purchaseRow) scanDestWithNames() []any {
	return append(r.scanDest(), &r.PartName, &r.PartUnitPriceCents, &r.EmployeeName, &r.CustomerName)
}
