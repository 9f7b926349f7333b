package repository

import (
	"time"

	"github.com/google/uuid"
)

type accountRow struct {
	ID             uuid.UUID
	Role           string
	Name           string
	Email          string
	PasswordHash   string
	SalaryCents    *int64
	IsActive       bool
	JoinedAt       time.Time
	LastWorkingDay *time.Time

	InHand   *int
	Finished *int

	DiscountRemaining *int
	FreeServicesUsed  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

var accountColumns = []string{
	"a.id", "a.role", "a.name", "a.email", "a.password_hash", "a.salary_cents",
	"a.is_active", "a.joined_at", "a.last_working_day",
	"w.in_hand", "w.finished",
	"l.discount_remaining", "l.free_services_used",
	"a.created_at", "a.updated_at",
}

func (r *accountRow) scanDest() []any {
	return []any{
		&r.ID, &r.Role, &r.Name, &r.Email, &r.PasswordHash, &r.SalaryCents,
		&r.IsActive, &r.JoinedAt, &r.LastWorkingDay,
		&r.InHand, &r.Finished,
		&r.DiscountRemaining, &r.FreeServicesUsed,
		&r.CreatedAt, &r.UpdatedAt,
	}
}
