package repository

import (
	"github.com/samber/lo"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
)

func rowToModel(r *jobRow) *model.Job {
	return &model.Job{
		ID:              r.ID,
		ServiceType:     model.ServiceType(r.ServiceType),
		Status:          model.JobStatus(r.Status),
		VehicleNumber:   r.VehicleNumber,
		CustomerID:      r.CustomerID,
		EmployeeID:      r.EmployeeID,
		DiscountPercent: r.DiscountPercent,
		FinalPrice:      pgutil.FromCentsPtr(r.FinalPriceCents),
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
		CustomerName:    lo.FromPtr(r.CustomerName),
		EmployeeName:    lo.FromPtr(r.EmployeeName),
	}
}
