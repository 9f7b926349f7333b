package repository

import (
	"time"

	"github.com/google/uuid"
)

type jobRow struct {
	ID              uuid.UUID
	ServiceType     string
	Status          string
	VehicleNumber   string
	CustomerID      uuid.UUID
	EmployeeID      *uuid.UUID
	DiscountPercent int
	FinalPriceCents *int64
	StartedAt       time.Time
	EndedAt         *time.Time

	CustomerName *string
	EmployeeName *string
}

var jobColumns = []string{
	"s.id", "s.service_type", "s.status", "s.vehicle_number", "s.customer_id", "s.employee_id",
	"s.discount_percent", "s.final_price_cents", "s.started_at", "s.ended_at",
}

var jobColumnsWithNames = append(append([]string{}, jobColumns...), "c.name", "e.name")

func (r *jobRow) scanDest() []any {
	return []any{
		&r.ID, &r.ServiceType, &r.Status, &r.VehicleNumber, &r.CustomerID, &r.EmployeeID,
		&r.DiscountPercent, &r.FinalPriceCents, &r.StartedAt, &r.EndedAt,
	}
}

var jobColumnsWithNames = append(append([]string{}, jobColumns...), "c.name", "e.name")

func (r *jobRow) scanDestWithNames() []any {
	return append(r.scanDest(), &r.CustomerName, &r.EmployeeName)
}
