package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/carwash/internal/model"
)

// jobCompletedRecord is the wire shape of the service.completed topic.
// Money travels as decimal strings.
type jobCompletedRecord struct {
	EventID       string          `json:"event_uuid"`
	JobID         string          `json:"service_uuid"`
	ServiceType   string          `json:"service_type"`
	VehicleNumber string          `json:"vehicle_number"`
	CustomerID    string          `json:"customer_uuid"`
	CustomerName  string          `json:"customer_name"`
	EmployeeID    string          `json:"employee_uuid"`
	EmployeeName  string          `json:"employee_name"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Discount      int             `json:"discount_percent"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	StartedAt     time.Time       `json:"started_at"`
	EndedAt       time.Time       `json:"ended_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) JobCompletedToPayload(ev model.JobCompletedEvent) ([]byte, error) {
	payload, err := json.Marshal(jobCompletedRecord{
		EventID:       ev.EventID.String(),
		JobID:         ev.JobID.String(),
		ServiceType:   string(ev.ServiceType),
		VehicleNumber: ev.VehicleNumber,
		CustomerID:    ev.CustomerID.String(),
		CustomerName:  ev.CustomerName,
		EmployeeID:    ev.EmployeeID.String(),
		EmployeeName:  ev.EmployeeName,
		BasePrice:     ev.BasePrice,
		Discount:      ev.Discount,
		FinalPrice:    ev.FinalPrice,
		StartedAt:     ev.StartedAt.UTC(),
		EndedAt:       ev.EndedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job completed: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToJobCompleted(data []byte) (model.JobCompletedEvent, error) {
	var rec jobCompletedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.JobCompletedEvent{}, fmt.Errorf("failed to unmarshal job completed: %w", err)
	}

	ids := make([]uuid.UUID, 4)
	for i, s := range []string{rec.EventID, rec.JobID, rec.CustomerID, rec.EmployeeID} {
		id, err := uuid.Parse(s)
		if err != nil {
			return model.JobCompletedEvent{}, fmt.Errorf("job completed: bad uuid %q: %w", s, err)
		}
		ids[i] = id
	}

	return model.JobCompletedEvent{
		EventID:       ids[0],
		JobID:         ids[1],
		ServiceType:   model.ServiceType(rec.ServiceType),
		VehicleNumber: rec.VehicleNumber,
		CustomerID:    ids[2],
		CustomerName:  rec.CustomerName,
		EmployeeID:    ids[3],
		EmployeeName:  rec.EmployeeName,
		BasePrice:     rec.BasePrice,
		Discount:      rec.Discount,
		FinalPrice:    rec.FinalPrice,
		StartedAt:     rec.StartedAt,
		EndedAt:       rec.EndedAt,
	}, nil
}
