package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

type businessEnv struct {
	Timezone   string `env:"APP_TIMEZONE" envDefault:"UTC"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

type business struct {
	raw businessEnv
	loc *time.Location
}

func NewBusinessConfig() (*business, error) {
	var raw businessEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	if raw.BcryptCost < bcrypt.MinCost || raw.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &business{raw: raw, loc: loc}, nil
}

// Location is the time zone report periods are computed in.
func (cfg *business) Location() *time.Location { return cfg.loc }
func (cfg *business) BcryptCost() int          { return cfg.raw.BcryptCost }
