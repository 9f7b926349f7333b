package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name    string
		params  model.CreateReviewParams
		wantErr error
	}{
		{"ok", model.CreateReviewParams{Rating: 5, Comment: "spotless"}, nil},
		{"rating too low", model.CreateReviewParams{Rating: 0, Comment: "meh"}, model.ErrValidation},
		{"rating too high", model.CreateReviewParams{Rating: 6, Comment: "wow"}, model.ErrValidation},
		{"blank comment", model.CreateReviewParams{Rating: 3, Comment: "   "}, model.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockReviewRepository(t)
			if tt.wantErr == nil {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(uuid.New(), nil).Once()
			}

			r, err := NewReviewService(repo, nil, time.Second, time.Second).Create(ctx, tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, r.ID)
		})
	}
}

func TestService_List_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		page, size        int
		wantLimit, offset int
	}{
		{"defaults", 0, 0, 2, 0},
		{"second page", 2, 0, 2, 2},
		{"capped size", 3, 10, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockReviewRepository(t)
			repo.On("List", mock.Anything, tt.wantLimit, tt.offset).Return([]model.Review{}, 7, nil).Once()

			p, err := NewReviewService(repo, nil, time.Second, time.Second).List(context.Background(), tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, p.PageSize)
			assert.Equal(t, 7, p.Total)
		})
	}
}
