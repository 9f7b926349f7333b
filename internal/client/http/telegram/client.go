package tgclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/you-humble/carwash/internal/model"
)

// Bot is the part of *bot.Bot the client uses.
type Bot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type client struct {
	bot       Bot
	parseMode models.ParseMode
}

func NewClient(b Bot, parseMode models.ParseMode) *client {
	return &client{bot: b, parseMode: parseMode}
}

// SendMessage posts text to a staff chat. Customer and employee names can
// break Markdown entities, so a rejected formatted message is resent as
// plain text. A chat that blocked or removed the bot yields
// model.ErrChatUnavailable.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	params := &bot.SendMessageParams{
		ChatID:              chatID,
		Text:                text,
		ParseMode:           c.parseMode,
		DisableNotification: true,
	}

	_, err := c.bot.SendMessage(ctx, params)
	if err != nil && c.parseMode != "" && errors.Is(err, bot.ErrorBadRequest) {
		params.ParseMode = ""
		_, err = c.bot.SendMessage(ctx, params)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bot.ErrorForbidden):
		return fmt.Errorf("%w: chat %d: %w", model.ErrChatUnavailable, chatID, err)
	default:
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
}
