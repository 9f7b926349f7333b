package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountParams_Validate(t *testing.T) {
	t.Parallel()

	salary := decimal.NewFromInt(25000)
	zero := decimal.Zero
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := joined.AddDate(0, 0, -1)

	base := func(role Role) RegisterAccountParams {
		return RegisterAccountParams{
			Role:            role,
			Name:            "ravi",
			Email:           "ravi@example.com",
			Password:        "s3cret!pass",
			ConfirmPassword: "s3cret!pass",
		}
	}

	tests := []struct {
		name       string
		params     func() RegisterAccountParams
		wantFields []string
	}{
		{
			name:   "customer ok",
			params: func() RegisterAccountParams { return base(RoleCustomer) },
		},
		{
			name: "employee with salary ok",
			params: func() RegisterAccountParams {
				p := base(RoleEmployee)
				p.Salary = &salary
				return p
			},
		},
		{
			name: "admin with zero salary ok",
			params: func() RegisterAccountParams {
				p := base(RoleAdmin)
				p.Salary = &zero
				return p
			},
		},
		{
			name:       "employee without salary",
			params:     func() RegisterAccountParams { return base(RoleEmployee) },
			wantFields: []string{"salary"},
		},
		{
			name: "admin with salary",
			params: func() RegisterAccountParams {
				p := base(RoleAdmin)
				p.Salary = &salary
				return p
			},
			wantFields: []string{"salary"},
		},
		{
			name: "customer with salary",
			params: func() RegisterAccountParams {
				p := base(RoleCustomer)
				p.Salary = &salary
				return p
			},
			wantFields: []string{"salary"},
		},
		{
			name: "bad email, name and password",
			params: func() RegisterAccountParams {
				p := base(RoleCustomer)
				p.Email = "not-an-email"
				p.Name = "1 ravi"
				p.Password = "password"
				p.ConfirmPassword = "password"
				return p
			},
			wantFields: []string{"email", "name", "password"},
		},
		{
			name: "short password with letter, digit and symbol ok",
			params: func() RegisterAccountParams {
				p := base(RoleCustomer)
				p.Password = "a1!"
				p.ConfirmPassword = "a1!"
				return p
			},
		},
		{
			name: "password mismatch",
			params: func() RegisterAccountParams {
				p := base(RoleCustomer)
				p.ConfirmPassword = "other1!pass"
				return p
			},
			wantFields: []string{"confirm_password"},
		},
		{
			name: "last working day before joined",
			params: func() RegisterAccountParams {
				p := base(RoleEmployee)
				p.Salary = &salary
				p.JoinedAt = &joined
				p.LastWorkingDay = &before
				return p
			},
			wantFields: []string{"last_working_day"},
		},
		{
			name: "unknown role",
			params: func() RegisterAccountParams {
				return base(Role("manager"))
			},
			wantFields: []string{"role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params().Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Len(t, verr.Fields, len(tt.wantFields))
		})
	}
}

func TestUpdateAccountParams_Validate(t *testing.T) {
	t.Parallel()

	salary := decimal.NewFromInt(100)
	name := "x"

	assert.NoError(t, UpdateAccountParams{Salary: &salary}.Validate(RoleEmployee))
	assert.ErrorIs(t, UpdateAccountParams{Salary: &salary}.Validate(RoleCustomer), ErrValidation)
	assert.ErrorIs(t, UpdateAccountParams{Salary: &salary}.Validate(RoleAdmin), ErrValidation)
	assert.ErrorIs(t, UpdateAccountParams{Name: &name}.Validate(RoleAdmin), ErrValidation)
}

func TestWorkload_Apply(t *testing.T) {
	t.Parallel()

	w := Workload{}
	w = w.Apply(WorkloadEvent{Kind: WorkloadJobStarted})
	w = w.Apply(WorkloadEvent{Kind: WorkloadJobStarted})
	assert.Equal(t, Workload{InHand: 2}, w)

	w = w.Apply(WorkloadEvent{Kind: WorkloadJobCompleted})
	assert.Equal(t, Workload{InHand: 1, Finished: 1}, w)

	w = w.Apply(WorkloadEvent{Kind: WorkloadJobCompleted})
	w = w.Apply(WorkloadEvent{Kind: WorkloadJobCompleted})
	assert.Equal(t, Workload{InHand: 0, Finished: 3}, w, "in hand never goes negative")
}
