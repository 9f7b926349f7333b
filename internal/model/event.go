package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkloadEventKind int

const (
	WorkloadJobStarted WorkloadEventKind = iota + 1
	WorkloadJobCompleted
)

// WorkloadEvent is applied to an employee's counters inside the job transaction.
type WorkloadEvent struct {
	Kind       WorkloadEventKind
	EmployeeID uuid.UUID
}

// JobCompletedEvent is published after a completion commits.
type JobCompletedEvent struct {
	EventID       uuid.UUID
	JobID         uuid.UUID
	ServiceType   ServiceType
	VehicleNumber string
	CustomerID    uuid.UUID
	CustomerName  string
	EmployeeID    uuid.UUID
	EmployeeName  string
	BasePrice     decimal.Decimal
	Discount      int
	FinalPrice    decimal.Decimal
	StartedAt     time.Time
	EndedAt       time.Time
}

// CompletionNotice is what the customer is told when their service is done.
type CompletionNotice struct {
	CustomerName  string
	CustomerEmail string
	ServiceType   ServiceType
	VehicleNumber string
	EmployeeName  string
	EmployeeEmail string
	Price         Price
}
