package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCompanyName = "local"

type Part struct {
	ID             uuid.UUID
	Name           string
	UnitPrice      decimal.Decimal
	StockQuantity  int64
	ManufacturedOn time.Time
	ExpiresOn      time.Time
	CompanyName    string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PartParams struct {
	Name           string
	UnitPrice      decimal.Decimal
	StockQuantity  int64
	ManufacturedOn time.Time
	ExpiresOn      time.Time
	CompanyName    string
	Description    string
}

func (p PartParams) Validate() error {
	v := NewValidationError()
	if p.Name == "" {
		v.Add("name", "name is required")
	}
	if p.UnitPrice.IsNegative() {
		v.Add("unit_price", "must not be negative")
	}
	if p.StockQuantity < 0 {
		v.Add("stock_quantity", "must not be negative")
	}
	if !p.ExpiresOn.After(p.ManufacturedOn) {
		v.Add("expiry_date", "expiry date must be after manufacture date")
	}
	return v.OrNil()
}

type PartFilter struct {
	NamePrefix    string
	CompanyPrefix string
}
