package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
)

var now = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func newService(repo AccountRepository) *service {
	return NewAccountService(repo, bcrypt.MinCost, func() time.Time { return now }, time.Second, time.Second)
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	salary := decimal.NewFromInt(30000)

	tests := []struct {
		name  string
		role  model.Role
		check func(t *testing.T, acc *model.Account)
	}{
		{
			name: "customer gets loyalty counters",
			role: model.RoleCustomer,
			check: func(t *testing.T, acc *model.Account) {
				require.NotNil(t, acc.Loyalty)
				assert.Equal(t, model.Loyalty{}, *acc.Loyalty)
				assert.Nil(t, acc.Workload)
			},
		},
		{
			name: "employee gets workload counters",
			role: model.RoleEmployee,
			check: func(t *testing.T, acc *model.Account) {
				require.NotNil(t, acc.Workload)
				assert.Equal(t, model.Workload{}, *acc.Workload)
				assert.Nil(t, acc.Loyalty)
			},
		},
		{
			name: "admin has neither",
			role: model.RoleAdmin,
			check: func(t *testing.T, acc *model.Account) {
				assert.Nil(t, acc.Workload)
				assert.Nil(t, acc.Loyalty)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockAccountRepository(t)
			id := uuid.New()
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(id, nil).Once()

			params := model.RegisterAccountParams{
				Role:            tt.role,
				Name:            "Anita",
				Email:           " Anita@Example.com ",
				Password:        "w4sh!ng-day",
				ConfirmPassword: "w4sh!ng-day",
			}
			if tt.role == model.RoleEmployee {
				params.Salary = &salary
			}

			acc, err := newService(repo).Register(ctx, params)
			require.NoError(t, err)
			assert.Equal(t, id, acc.ID)
			assert.Equal(t, "anita@example.com", acc.Email)
			assert.True(t, acc.IsActive)
			assert.True(t, now.Equal(acc.JoinedAt))
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("w4sh!ng-day")))
			tt.check(t, acc)
		})
	}
}

func TestService_Register_Rejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := newService(mocks.NewMockAccountRepository(t)).Register(ctx, model.RegisterAccountParams{
			Role:     model.RoleEmployee,
			Name:     "Bo",
			Email:    gofakeit.Email(),
			Password: "short",
		})
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAccountRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, model.ErrDuplicateEmail).Once()

		_, err := newService(repo).Register(ctx, model.RegisterAccountParams{
			Role:            model.RoleCustomer,
			Name:            "Bo",
			Email:           gofakeit.Email(),
			Password:        "p4ss!word",
			ConfirmPassword: "p4ss!word",
		})
		require.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("last working day deactivates", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAccountRepository(t)
		acc := &model.Account{ID: uuid.New(), Role: model.RoleEmployee, IsActive: true, JoinedAt: now.AddDate(-1, 0, 0)}
		repo.On("AccountByID", mock.Anything, acc.ID).Return(acc, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(a *model.Account) bool {
			return !a.IsActive && a.LastWorkingDay != nil
		})).Return(nil).Once()

		last := now
		got, err := newService(repo).Update(ctx, acc.ID, model.UpdateAccountParams{LastWorkingDay: &last})
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("salary on a customer", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockAccountRepository(t)
		acc := &model.Account{ID: uuid.New(), Role: model.RoleCustomer, IsActive: true}
		repo.On("AccountByID", mock.Anything, acc.ID).Return(acc, nil).Once()

		salary := decimal.NewFromInt(1)
		_, err := newService(repo).Update(ctx, acc.ID, model.UpdateAccountParams{Salary: &salary})
		require.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestService_List_BadRole(t *testing.T) {
	t.Parallel()

	_, err := newService(mocks.NewMockAccountRepository(t)).List(context.Background(), model.AccountFilter{Role: "owner"})
	require.ErrorIs(t, err, model.ErrValidation)
}
