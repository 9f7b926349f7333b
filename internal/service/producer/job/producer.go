package jobproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/kafka"
)

const eventTypeJobCompleted = "service.completed"

type Converter interface {
	JobCompletedToPayload(ev model.JobCompletedEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewJobProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// PublishJobCompleted keys the record by job id so events of one job stay ordered.
func (s *service) PublishJobCompleted(ctx context.Context, ev model.JobCompletedEvent) error {
	payload, err := s.conv.JobCompletedToPayload(ev)
	if err != nil {
		return fmt.Errorf("converter job_completed_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, kafka.OutgoingMessage{
		Key:   ev.JobID[:],
		Value: payload,
		Headers: map[string]string{
			"event_id":   ev.EventID.String(),
			"event_type": eventTypeJobCompleted,
		},
	}); err != nil {
		return fmt.Errorf("producer to service.completed topic error: %w", err)
	}

	return nil
}
