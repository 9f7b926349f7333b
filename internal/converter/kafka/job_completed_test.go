package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
)

func TestPayloadToJobCompleted_Wire(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"event_uuid": "2f1c6c53-8a52-4d3c-9b0a-2d1a0c9e7b11",
		"service_uuid": "6a8f5c1e-3b2d-4e9f-8a7b-1c2d3e4f5a6b",
		"service_type": "only_polish",
		"vehicle_number": "MH14fu1234",
		"customer_uuid": "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d",
		"customer_name": "anita",
		"employee_uuid": "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		"employee_name": "ravi",
		"base_price": "30",
		"discount_percent": 20,
		"final_price": "24.00",
		"started_at": "2025-06-02T09:00:00Z",
		"ended_at": "2025-06-02T09:40:00Z"
	}`)

	ev, err := NewKafkaConverter().PayloadToJobCompleted(data)
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("6a8f5c1e-3b2d-4e9f-8a7b-1c2d3e4f5a6b"), ev.JobID)
	assert.Equal(t, model.ServiceOnlyPolish, ev.ServiceType)
	assert.Equal(t, 20, ev.Discount)
	assert.True(t, decimal.NewFromInt(24).Equal(ev.FinalPrice))
	assert.Equal(t, 40*time.Minute, ev.EndedAt.Sub(ev.StartedAt))
}

func TestPayloadToJobCompleted_Rejects(t *testing.T) {
	t.Parallel()

	c := NewKafkaConverter()

	_, err := c.PayloadToJobCompleted([]byte(`not json`))
	assert.Error(t, err)

	_, err = c.PayloadToJobCompleted([]byte(`{"event_uuid":"nope"}`))
	assert.Error(t, err)
}
