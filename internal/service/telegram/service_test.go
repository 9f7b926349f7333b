package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
)

func TestNotifyJobCompleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sender := mocks.NewMockMessageSender(t)
	sender.On("SendMessage", mock.Anything, int64(1), mock.AnythingOfType("string")).Return(nil).Once()
	sender.On("SendMessage", mock.Anything, int64(2), mock.AnythingOfType("string")).Return(errors.New("chat not found")).Once()

	svc := NewTgService(sender)
	svc.AddChatID(ctx, 1)
	svc.AddChatID(ctx, 2)
	svc.AddChatID(ctx, 1)

	err := svc.NotifyJobCompleted(ctx, model.JobCompletedEvent{ServiceType: model.ServiceOnlyBody})
	assert.ErrorContains(t, err, "chat not found")
}

func TestNotifyJobCompleted_DropsUnavailableChat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sender := mocks.NewMockMessageSender(t)
	sender.On("SendMessage", mock.Anything, int64(1), mock.AnythingOfType("string")).Return(nil).Twice()
	sender.On("SendMessage", mock.Anything, int64(2), mock.AnythingOfType("string")).
		Return(fmt.Errorf("%w: chat 2: forbidden", model.ErrChatUnavailable)).Once()

	svc := NewTgService(sender)
	svc.AddChatID(ctx, 1)
	svc.AddChatID(ctx, 2)

	assert.NoError(t, svc.NotifyJobCompleted(ctx, model.JobCompletedEvent{ServiceType: model.ServiceOnlyBody}))
	assert.NoError(t, svc.NotifyJobCompleted(ctx, model.JobCompletedEvent{ServiceType: model.ServiceOnlyBody}))
	assert.ElementsMatch(t, []int64{1}, svc.chats())
}

func TestNotifyJobCompleted_NoChats(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewTgService(mocks.NewMockMessageSender(t)).
		NotifyJobCompleted(context.Background(), model.JobCompletedEvent{}))
}
