package repository

import (
	"github.com/samber/lo"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
)

func rowToModel(r *purchaseRow) *model.Purchase {
	return &model.Purchase{
		ID:            r.ID,
		PartID:        r.PartID,
		EmployeeID:    r.EmployeeID,
		CustomerID:    r.CustomerID,
		Quantity:      r.Quantity,
		TotalPrice:    pgutil.FromCents(r.TotalPriceCents),
		PurchasedAt:   r.PurchasedAt,
		PartName:      lo.FromPtr(r.PartName),
		PartUnitPrice: pgutil.FromCents(lo.FromPtr(r.PartUnitPriceCents)),
		EmployeeName:  lo.FromPtr(r.EmployeeName),
		CustomerName:  lo.FromPtr(r.CustomerName),
	}
}
