// Package pgutil holds the small conversions shared by the Postgres
// repositories.
package pgutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Cents converts a money amount to integer cents, rounding half away from zero.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

func CentsPtr(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}
	c := Cents(*d)
	return &c
}

func FromCentsPtr(c *int64) *decimal.Decimal {
	if c == nil {
		return nil
	}
	d := FromCents(*c)
	return &d
}

// Prefix builds an ILIKE pattern matching values that start with s.
func Prefix(s string) string {
	return likeEscaper.Replace(s) + "%"
}

// Contains builds an ILIKE pattern matching values that contain s.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
