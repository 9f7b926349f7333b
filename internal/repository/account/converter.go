package repository

import (
	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
)

func rowToModel(r *accountRow) *model.Account {
	acc := &model.Account{
		ID:             r.ID,
		Role:           model.Role(r.Role),
		Name:           r.Name,
		Email:          r.Email,
		PasswordHash:   r.PasswordHash,
		Salary:         pgutil.FromCentsPtr(r.SalaryCents),
		IsActive:       r.IsActive,
		JoinedAt:       r.JoinedAt,
		LastWorkingDay: r.LastWorkingDay,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if r.InHand != nil && r.Finished != nil {
		acc.Workload = &model.Workload{InHand: *r.InHand, Finished: *r.Finished}
	}
	if r.DiscountRemaining != nil && r.FreeServicesUsed != nil {
		acc.Loyalty = &model.Loyalty{
			DiscountRemaining: *r.DiscountRemaining,
			FreeServicesUsed:  *r.FreeServicesUsed,
		}
	}

	return acc
}
