package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/carwash/platform/kafka"
	"github.com/you-humble/carwash/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

// Send writes msg synchronously. The request id of ctx, if any, travels as
// a header unless msg already sets one.
func (p *producer) Send(ctx context.Context, msg kafka.OutgoingMessage) error {
	pm := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Value),
	}
	for k, v := range msg.Headers {
		pm.Headers = append(pm.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	if _, ok := msg.Headers[kafka.HeaderRequestID]; !ok {
		if id := logger.RequestID(ctx); id != "" {
			pm.Headers = append(pm.Headers, sarama.RecordHeader{
				Key:   []byte(kafka.HeaderRequestID),
				Value: []byte(id),
			})
		}
	}

	partition, offset, err := p.syncProducer.SendMessage(pm)
	if err != nil {
		p.logger.Error(ctx, "failed to send message",
			zap.String("topic", p.topic),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", string(msg.Key)),
	)

	return nil
}
