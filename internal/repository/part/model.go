package repository

import (
	"time"

	"github.com/google/uuid"
)

type partRow struct {
	ID             uuid.UUID
	Name           string
	UnitPriceCents int64
	StockQuantity  int64
	ManufacturedOn time.Time
	ExpiresOn      time.Time
	CompanyName    string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

var partColumns = []string{
	"id", "name", "unit_price_cents", "stock_quantity", "manufactured_on", "expires_on",
	"company_name", "description", "created_at", "updated_at",
}

func (r *partRow) scanDest() []any {
	return []any{
		&r.ID, &r.Name, &r.UnitPriceCents, &r.StockQuantity, &r.ManufacturedOn, &r.ExpiresOn,
		&r.CompanyName, &r.Description, &r.CreatedAt, &r.UpdatedAt,
	}
}
