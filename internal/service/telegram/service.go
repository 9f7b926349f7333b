package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/you-humble/carwash/internal/converter/message"
	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client  MessageSender
	mu      sync.RWMutex
	storage map[int64]struct{}
}

func NewTgService(client MessageSender) *service {
	return &service{client: client, storage: map[int64]struct{}{}}
}

// NotifyJobCompleted tells every registered staff chat. It keeps going past
// a failing chat and returns the joined errors. Chats that blocked the bot
// are unregistered instead of reported.
func (svc *service) NotifyJobCompleted(ctx context.Context, ev model.JobCompletedEvent) error {
	msg, err := message.BuildJobCompleted(ev)
	if err != nil {
		return err
	}

	var (
		errs []error
		gone []int64
	)
	for _, chatID := range svc.chats() {
		err := svc.client.SendMessage(ctx, chatID, msg)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrChatUnavailable):
			gone = append(gone, chatID)
		default:
			errs = append(errs, err)
		}
	}

	for _, chatID := range gone {
		logger.Warn(ctx, "dropping unreachable staff chat", logger.Int64("chat_id", chatID))
		svc.removeChatID(chatID)
	}

	return errors.Join(errs...)
}

func (svc *service) chats() []int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return slices.Collect(maps.Keys(svc.storage))
}

func (svc *service) removeChatID(chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	delete(svc.storage, chatID)
}

func (svc *service) AddChatID(_ context.Context, chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.storage[chatID] = struct{}{}
}
