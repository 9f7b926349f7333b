package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/platform/kafka"
	"github.com/you-humble/carwash/platform/logger"
)

func headerMap(hs []sarama.RecordHeader) map[string]string {
	out := make(map[string]string, len(hs))
	for _, h := range hs {
		out[string(h.Key)] = string(h.Value)
	}
	return out
}

func TestProducer_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctx         context.Context
		msg         kafka.OutgoingMessage
		wantHeaders map[string]string
	}{
		{
			name:        "plain message",
			ctx:         context.Background(),
			msg:         kafka.OutgoingMessage{Key: []byte("k"), Value: []byte("v"), Headers: map[string]string{"event_type": "service.completed"}},
			wantHeaders: map[string]string{"event_type": "service.completed"},
		},
		{
			name: "request id from context",
			ctx:  logger.WithRequestID(context.Background(), "req-1"),
			msg:  kafka.OutgoingMessage{Key: []byte("k"), Value: []byte("v")},
			wantHeaders: map[string]string{
				kafka.HeaderRequestID: "req-1",
			},
		},
		{
			name: "explicit request id wins",
			ctx:  logger.WithRequestID(context.Background(), "req-1"),
			msg: kafka.OutgoingMessage{
				Key:     []byte("k"),
				Value:   []byte("v"),
				Headers: map[string]string{kafka.HeaderRequestID: "req-2"},
			},
			wantHeaders: map[string]string{
				kafka.HeaderRequestID: "req-2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sp := mocks.NewSyncProducer(t, nil)
			sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(pm *sarama.ProducerMessage) error {
				if pm.Topic != "carwash.job.completed" {
					return errors.New("unexpected topic " + pm.Topic)
				}
				assert.Equal(t, tt.wantHeaders, headerMap(pm.Headers))
				return nil
			})

			p := NewProducer(sp, "carwash.job.completed", logger.NoopLogger{})
			require.NoError(t, p.Send(tt.ctx, tt.msg))
			require.NoError(t, sp.Close())
		})
	}
}

func TestProducer_SendError(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(sp, "carwash.job.completed", logger.NoopLogger{})
	err := p.Send(context.Background(), kafka.OutgoingMessage{Value: []byte("v")})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}
