package model

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	default:
		return false
	}
}

// Workload is the employee-only section of an account.
type Workload struct {
	InHand   int
	Finished int
}

// Apply folds a workload event into the counters. InHand never goes below zero.
func (w Workload) Apply(ev WorkloadEvent) Workload {
	switch ev.Kind {
	case WorkloadJobStarted:
		w.InHand++
	case WorkloadJobCompleted:
		if w.InHand > 0 {
			w.InHand--
		}
		w.Finished++
	}
	return w
}

// Loyalty is the customer-only section of an account.
type Loyalty struct {
	DiscountRemaining int
	FreeServicesUsed  int
}

type Account struct {
	ID             uuid.UUID
	Role           Role
	Name           string
	Email          string
	PasswordHash   string
	Salary         *decimal.Decimal
	IsActive       bool
	JoinedAt       time.Time
	LastWorkingDay *time.Time

	// Exactly one of these is set for employees and customers, none for admins.
	Workload *Workload
	Loyalty  *Loyalty

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Account) IsEmployee() bool { return a != nil && a.Role == RoleEmployee }
func (a *Account) IsCustomer() bool { return a != nil && a.Role == RoleCustomer }

type RegisterAccountParams struct {
	Role            Role
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Salary          *decimal.Decimal
	JoinedAt        *time.Time
	LastWorkingDay  *time.Time
}

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z]\S+$`)
)

// Validate checks the role-specific required fields of a registration.
func (p RegisterAccountParams) Validate() error {
	v := NewValidationError()

	if !emailRe.MatchString(p.Email) {
		v.Add("email", "invalid email format")
	}
	if !nameRe.MatchString(p.Name) {
		v.Add("name", "must start with a letter, contain no spaces and be at least 2 characters long")
	}
	if msg := passwordProblem(p.Password); msg != "" {
		v.Add("password", msg)
	}
	if p.Password != p.ConfirmPassword {
		v.Add("confirm_password", "passwords do not match")
	}
	if p.LastWorkingDay != nil && p.JoinedAt != nil && p.LastWorkingDay.Before(*p.JoinedAt) {
		v.Add("last_working_day", "must not be before joined date")
	}

	switch p.Role {
	case RoleEmployee:
		if p.Salary == nil {
			v.Add("salary", "salary is required for employees")
		} else if p.Salary.IsNegative() {
			v.Add("salary", "salary must not be negative")
		}
	case RoleAdmin:
		if p.Salary != nil && !p.Salary.IsZero() {
			v.Add("salary", "admin salary must be 0 or empty")
		}
	case RoleCustomer:
		if p.Salary != nil {
			v.Add("salary", "customers do not have a salary")
		}
		if p.LastWorkingDay != nil {
			v.Add("last_working_day", "customers do not have a last working day")
		}
	default:
		v.Add("role", "must be one of admin, employee, customer")
	}

	return v.OrNil()
}

func passwordProblem(pw string) string {
	var letter, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*?&#^()-_=+", r):
			special = true
		}
	}
	if !letter || !digit || !special {
		return "must contain at least one letter, one number and one special character"
	}
	return ""
}

// UpdateAccountParams is a partial update; nil fields are left unchanged.
type UpdateAccountParams struct {
	Name           *string
	Email          *string
	Salary         *decimal.Decimal
	IsActive       *bool
	LastWorkingDay *time.Time
}

// Validate checks the patch against the role of the account it targets.
func (p UpdateAccountParams) Validate(role Role) error {
	v := NewValidationError()

	if p.Email != nil && !emailRe.MatchString(*p.Email) {
		v.Add("email", "invalid email format")
	}
	if p.Name != nil && !nameRe.MatchString(*p.Name) {
		v.Add("name", "must start with a letter, contain no spaces and be at least 2 characters long")
	}
	if p.Salary != nil {
		switch role {
		case RoleCustomer:
			v.Add("salary", "customers do not have a salary")
		case RoleAdmin:
			if !p.Salary.IsZero() {
				v.Add("salary", "admin salary must be 0 or empty")
			}
		case RoleEmployee:
			if p.Salary.IsNegative() {
				v.Add("salary", "salary must not be negative")
			}
		}
	}
	if p.LastWorkingDay != nil && role == RoleCustomer {
		v.Add("last_working_day", "customers do not have a last working day")
	}

	return v.OrNil()
}

type AccountFilter struct {
	Role         Role
	NameContains string
}
