package service

import (
	"context"
	"fmt"

	"github.com/you-humble/carwash/internal/converter/message"
	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type service struct {
	sender MailSender
}

func NewMailService(sender MailSender) *service {
	return &service{sender: sender}
}

// NotifyCompletion emails the customer the pricing breakdown of a finished service.
func (svc *service) NotifyCompletion(ctx context.Context, n model.CompletionNotice) error {
	const op string = "mail.service.NotifyCompletion"

	if n.CustomerEmail == "" {
		return fmt.Errorf("%s: customer has no email address", op)
	}

	body, err := message.BuildCompletionEmail(n)
	if err != nil {
		return fmt.Errorf("%s: build body: %w", op, err)
	}

	if err := svc.sender.Send(ctx, n.CustomerEmail, message.CompletionSubject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Debug(ctx, "completion email sent", logger.String("to", n.CustomerEmail))

	return nil
}
