package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type smtpEnv struct {
	Host        string        `env:"SMTP_HOST"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	From        string        `env:"SMTP_FROM" envDefault:"no-reply@carwash.local"`
	FromName    string        `env:"SMTP_FROM_NAME" envDefault:"Car Wash"`
	ImplicitTLS bool          `env:"SMTP_IMPLICIT_TLS" envDefault:"false"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
}

type smtp struct {
	raw smtpEnv
}

func NewSMTPConfig() (*smtp, error) {
	var raw smtpEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &smtp{raw: raw}, nil
}

func (cfg *smtp) Enabled() bool          { return cfg.raw.Host != "" }
func (cfg *smtp) Host() string           { return cfg.raw.Host }
func (cfg *smtp) Port() int              { return cfg.raw.Port }
func (cfg *smtp) Username() string       { return cfg.raw.Username }
func (cfg *smtp) Password() string       { return cfg.raw.Password }
func (cfg *smtp) From() string           { return cfg.raw.From }
func (cfg *smtp) FromName() string       { return cfg.raw.FromName }
func (cfg *smtp) ImplicitTLS() bool      { return cfg.raw.ImplicitTLS }
func (cfg *smtp) Timeout() time.Duration { return cfg.raw.Timeout }
