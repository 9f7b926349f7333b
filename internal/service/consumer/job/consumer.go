package jobconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/kafka"
	"github.com/you-humble/carwash/platform/logger"
)

type Converter interface {
	PayloadToJobCompleted(data []byte) (model.JobCompletedEvent, error)
}

type Notifier interface {
	NotifyJobCompleted(ctx context.Context, ev model.JobCompletedEvent) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	notifier Notifier
}

func NewJobConsumer(consumer kafka.Consumer, conv Converter, notifier Notifier) *service {
	return &service{consumer: consumer, conv: conv, notifier: notifier}
}

func (s *service) RunJobCompletedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting service completed consumer")

	if err := s.consumer.Consume(ctx, s.jobCompletedHandler); err != nil {
		logger.Error(ctx, "Consume from service.completed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) jobCompletedHandler(ctx context.Context, msg kafka.Message) error {
	ev, err := s.conv.PayloadToJobCompleted(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode job completed record", logger.ErrorF(err))
		return fmt.Errorf("converter payload_to_job_completed error: %w", err)
	}

	if err := s.notifier.NotifyJobCompleted(ctx, ev); err != nil {
		logger.Error(ctx, "notify job completed",
			logger.String("job_id", ev.JobID.String()),
			logger.ErrorF(err),
		)
		return err
	}

	return nil
}
