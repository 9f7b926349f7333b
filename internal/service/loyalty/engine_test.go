package loyalty

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
)

func TestEngine_Compute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stored    model.Loyalty
		completed int
		want      int
		wantSaved *model.Loyalty
	}{
		{
			name:      "new customer",
			stored:    model.Loyalty{},
			completed: 0,
			want:      0,
		},
		{
			name:      "tier discount",
			stored:    model.Loyalty{},
			completed: 35,
			want:      20,
			wantSaved: &model.Loyalty{DiscountRemaining: 20},
		},
		{
			name:      "stale cached discount is ignored",
			stored:    model.Loyalty{DiscountRemaining: 30},
			completed: 7,
			want:      5,
			wantSaved: &model.Loyalty{DiscountRemaining: 5},
		},
		{
			name:      "free service consumes award",
			stored:    model.Loyalty{},
			completed: 50,
			want:      100,
			wantSaved: &model.Loyalty{DiscountRemaining: 100, FreeServicesUsed: 1},
		},
		{
			name:      "award already used falls back to tier",
			stored:    model.Loyalty{DiscountRemaining: 100, FreeServicesUsed: 1},
			completed: 51,
			want:      30,
			wantSaved: &model.Loyalty{DiscountRemaining: 30, FreeServicesUsed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			id := uuid.New()

			customers := mocks.NewMockCustomerRepository(t)
			counter := mocks.NewMockCompletedCounter(t)
			tx := mocks.NewPassthroughTx(t)

			customers.On("LoyaltyForUpdate", mock.Anything, id).Return(tt.stored, nil).Once()
			counter.On("CountCompleted", mock.Anything, id).Return(tt.completed, nil).Once()
			if tt.wantSaved != nil {
				customers.On("UpdateLoyalty", mock.Anything, id, *tt.wantSaved).Return(nil).Once()
			}

			got, err := NewEngine(customers, counter, tx).Compute(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_FreeServiceGrantedOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()
	stored := model.Loyalty{}

	customers := mocks.NewMockCustomerRepository(t)
	counter := mocks.NewMockCompletedCounter(t)
	tx := mocks.NewPassthroughTx(t)

	customers.On("LoyaltyForUpdate", mock.Anything, id).
		Return(func(context.Context, uuid.UUID) (model.Loyalty, error) { return stored, nil })
	customers.On("UpdateLoyalty", mock.Anything, id, mock.AnythingOfType("model.Loyalty")).
		Run(func(args mock.Arguments) { stored = args.Get(2).(model.Loyalty) }).
		Return(nil)
	counter.On("CountCompleted", mock.Anything, id).Return(50, nil)

	e := NewEngine(customers, counter, tx)

	first, err := e.Compute(ctx, id)
	require.NoError(t, err)
	second, err := e.Compute(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 100, first)
	assert.Equal(t, 30, second)
	assert.Equal(t, 1, stored.FreeServicesUsed)
}

func TestEngine_RefreshKeepsAward(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	customers := mocks.NewMockCustomerRepository(t)
	counter := mocks.NewMockCompletedCounter(t)
	tx := mocks.NewPassthroughTx(t)

	customers.On("LoyaltyForUpdate", mock.Anything, id).Return(model.Loyalty{}, nil).Once()
	counter.On("CountCompleted", mock.Anything, id).Return(50, nil).Once()
	customers.On("UpdateLoyalty", mock.Anything, id, model.Loyalty{DiscountRemaining: 100}).Return(nil).Once()

	got, err := NewEngine(customers, counter, tx).Refresh(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestEngine_Spend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	customers := mocks.NewMockCustomerRepository(t)
	tx := mocks.NewPassthroughTx(t)

	customers.On("LoyaltyForUpdate", mock.Anything, id).
		Return(model.Loyalty{DiscountRemaining: 20, FreeServicesUsed: 2}, nil).Once()
	customers.On("UpdateLoyalty", mock.Anything, id, model.Loyalty{FreeServicesUsed: 2}).Return(nil).Once()

	require.NoError(t, NewEngine(customers, mocks.NewMockCompletedCounter(t), tx).Spend(ctx, id))
}

func TestEngine_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown customer", func(t *testing.T) {
		t.Parallel()

		customers := mocks.NewMockCustomerRepository(t)
		customers.On("LoyaltyForUpdate", mock.Anything, id).Return(model.Loyalty{}, model.ErrCustomerNotFound).Once()

		_, err := NewEngine(customers, mocks.NewMockCompletedCounter(t), mocks.NewPassthroughTx(t)).Compute(ctx, id)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("counter failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		customers := mocks.NewMockCustomerRepository(t)
		counter := mocks.NewMockCompletedCounter(t)
		customers.On("LoyaltyForUpdate", mock.Anything, id).Return(model.Loyalty{}, nil).Once()
		counter.On("CountCompleted", mock.Anything, id).Return(0, boom).Once()

		_, err := NewEngine(customers, counter, mocks.NewPassthroughTx(t)).Compute(ctx, id)
		assert.ErrorIs(t, err, boom)
	})
}
