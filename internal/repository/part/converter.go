package repository

import (
	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/repository/pgutil"
)

func rowToModel(r *partRow) *model.Part {
	return &model.Part{
		ID:             r.ID,
		Name:           r.Name,
		UnitPrice:      pgutil.FromCents(r.UnitPriceCents),
		StockQuantity:  r.StockQuantity,
		ManufacturedOn: r.ManufacturedOn,
		ExpiresOn:      r.ExpiresOn,
		CompanyName:    r.CompanyName,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
