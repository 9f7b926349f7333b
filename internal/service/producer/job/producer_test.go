package jobproducer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/kafka"
)

type fakeProducer struct {
	sent []kafka.OutgoingMessage
	err  error
}

func (p *fakeProducer) Send(_ context.Context, msg kafka.OutgoingMessage) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

type fakeConverter struct{ err error }

func (c fakeConverter) JobCompletedToPayload(ev model.JobCompletedEvent) ([]byte, error) {
	return []byte(ev.VehicleNumber), c.err
}

func TestPublishJobCompleted(t *testing.T) {
	t.Parallel()

	ev := model.JobCompletedEvent{EventID: uuid.New(), JobID: uuid.New(), VehicleNumber: "MH14fu1234"}

	t.Run("keys by job id", func(t *testing.T) {
		t.Parallel()

		p := &fakeProducer{}
		require.NoError(t, NewJobProducer(p, fakeConverter{}).PublishJobCompleted(context.Background(), ev))
		require.Len(t, p.sent, 1)
		assert.Equal(t, ev.JobID[:], p.sent[0].Key)
		assert.Equal(t, []byte("MH14fu1234"), p.sent[0].Value)
		assert.Equal(t, ev.EventID.String(), p.sent[0].Headers["event_id"])
	})

	t.Run("broker error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("leader not available")
		err := NewJobProducer(&fakeProducer{err: boom}, fakeConverter{}).PublishJobCompleted(context.Background(), ev)
		assert.ErrorIs(t, err, boom)
	})
}
