package workload

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
)

func TestAggregator_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored model.Workload
		kind   model.WorkloadEventKind
		want   model.Workload
	}{
		{"started", model.Workload{InHand: 1, Finished: 4}, model.WorkloadJobStarted, model.Workload{InHand: 2, Finished: 4}},
		{"completed", model.Workload{InHand: 2, Finished: 4}, model.WorkloadJobCompleted, model.Workload{InHand: 1, Finished: 5}},
		{"completed with nothing in hand", model.Workload{Finished: 4}, model.WorkloadJobCompleted, model.Workload{Finished: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := uuid.New()
			employees := mocks.NewMockEmployeeRepository(t)
			employees.On("WorkloadForUpdate", mock.Anything, id).Return(tt.stored, nil).Once()
			employees.On("UpdateWorkload", mock.Anything, id, tt.want).Return(nil).Once()

			err := NewAggregator(employees, mocks.NewPassthroughTx(t)).
				Apply(context.Background(), model.WorkloadEvent{Kind: tt.kind, EmployeeID: id})
			require.NoError(t, err)
		})
	}
}

func TestAggregator_Apply_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no employee", func(t *testing.T) {
		t.Parallel()

		err := NewAggregator(mocks.NewMockEmployeeRepository(t), mocks.NewMockTxManager(t)).
			Apply(context.Background(), model.WorkloadEvent{Kind: model.WorkloadJobStarted})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		employees := mocks.NewMockEmployeeRepository(t)
		employees.On("WorkloadForUpdate", mock.Anything, id).Return(model.Workload{}, model.ErrEmployeeNotFound).Once()

		err := NewAggregator(employees, mocks.NewPassthroughTx(t)).
			Apply(context.Background(), model.WorkloadEvent{Kind: model.WorkloadJobStarted, EmployeeID: id})
		assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
	})
}
