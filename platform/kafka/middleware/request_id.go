package middleware

import (
	"context"

	"github.com/you-humble/carwash/platform/kafka"
	"github.com/you-humble/carwash/platform/logger"
)

// RequestID restores the producer's request id into the handler context.
func RequestID() kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			if id := msg.Header(kafka.HeaderRequestID); id != "" {
				ctx = logger.WithRequestID(ctx, id)
			}
			return next(ctx, msg)
		}
	}
}
