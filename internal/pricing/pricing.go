// Package pricing holds the price list, the loyalty tier step function and
// the final price calculation. Everything here is pure.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/you-humble/carwash/internal/model"
)

const (
	FreeServiceThreshold = 50
	FreeDiscount         = 100
)

var priceTable = map[model.ServiceType]decimal.Decimal{
	model.ServiceFullCarwash:    decimal.NewFromInt(70),
	model.ServiceInsideVacuum:   decimal.NewFromInt(40),
	model.ServiceOnlyBody:       decimal.NewFromInt(30),
	model.ServiceFullWithPolish: decimal.NewFromInt(100),
	model.ServiceOnlyPolish:     decimal.NewFromInt(30),
}

// tiers must stay sorted by ascending threshold.
var tiers = []struct {
	threshold int
	discount  int
}{
	{0, 0},
	{5, 5},
	{35, 20},
	{45, 30},
}

// Known reports whether t is on the price list.
func Known(t model.ServiceType) bool {
	_, ok := priceTable[t]
	return ok
}

func ServiceTypes() []model.ServiceType {
	return []model.ServiceType{
		model.ServiceFullCarwash,
		model.ServiceInsideVacuum,
		model.ServiceOnlyBody,
		model.ServiceFullWithPolish,
		model.ServiceOnlyPolish,
	}
}

// BasePrice returns zero for unknown service types.
func BasePrice(t model.ServiceType) decimal.Decimal {
	return priceTable[t]
}

// TierDiscount is the discount of the largest threshold not above completed.
func TierDiscount(completed int) int {
	discount := 0
	for _, t := range tiers {
		if completed >= t.threshold {
			discount = t.discount
		}
	}
	return discount
}

func FreeServicesEarned(completed int) int {
	if completed < 0 {
		return 0
	}
	return completed / FreeServiceThreshold
}

// Decision is the outcome of one loyalty computation.
type Decision struct {
	Discount         int
	FreeServicesUsed int
	Free             bool
}

// Decide applies the free-service override on top of the tier discount.
// When a free service is granted, FreeServicesUsed catches up with the
// number earned.
func Decide(completed, freeUsed int) Decision {
	earned := FreeServicesEarned(completed)
	if earned > freeUsed {
		return Decision{Discount: FreeDiscount, FreeServicesUsed: earned, Free: true}
	}
	return Decision{Discount: TierDiscount(completed), FreeServicesUsed: freeUsed}
}

// FinalPrice applies discount to the base price of t, rounded to cents.
// The discount is clamped to [0, 100].
func FinalPrice(t model.ServiceType, discount int) decimal.Decimal {
	base := BasePrice(t)
	switch {
	case discount >= FreeDiscount:
		return decimal.Zero
	case discount <= 0:
		return base.Round(2)
	}

	off := base.Mul(decimal.NewFromInt(int64(discount))).Div(decimal.NewFromInt(100))
	return base.Sub(off).Round(2)
}

// Quote bundles base, discount and final price for t.
func Quote(t model.ServiceType, discount int) model.Price {
	return model.Price{
		Base:     BasePrice(t),
		Discount: discount,
		Final:    FinalPrice(t, discount),
	}
}
