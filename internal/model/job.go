package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceFullCarwash    ServiceType = "full_carwash"
	ServiceInsideVacuum   ServiceType = "inside_vacuum"
	ServiceOnlyBody       ServiceType = "only_body"
	ServiceFullWithPolish ServiceType = "full_with_polish"
	ServiceOnlyPolish     ServiceType = "only_polish"
)

type JobStatus string

const (
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
)

func (s JobStatus) Valid() bool {
	return s == JobInProgress || s == JobCompleted
}

var vehicleNumberRe = regexp.MustCompile(`^[A-Z]{2}\d{2}[a-z]{2}\d{4}$`)

// ValidVehicleNumber reports whether n looks like MH14fu1234.
func ValidVehicleNumber(n string) bool {
	return vehicleNumberRe.MatchString(n)
}

// Job is a single service performed on a vehicle.
type Job struct {
	ID              uuid.UUID
	ServiceType     ServiceType
	Status          JobStatus
	VehicleNumber   string
	CustomerID      uuid.UUID
	EmployeeID      *uuid.UUID
	DiscountPercent int
	FinalPrice      *decimal.Decimal
	StartedAt       time.Time
	EndedAt         *time.Time

	// Read-side projections, filled by list/get queries.
	CustomerName string
	EmployeeName string
}

type CreateJobParams struct {
	ServiceType   ServiceType
	VehicleNumber string
	CustomerID    uuid.UUID
	EmployeeID    *uuid.UUID
}

// UpdateJobParams is a partial update; nil fields are left unchanged.
type UpdateJobParams struct {
	ServiceType   *ServiceType
	Status        *JobStatus
	VehicleNumber *string
	EmployeeID    *uuid.UUID
}

func (p UpdateJobParams) Empty() bool {
	return p.ServiceType == nil && p.Status == nil && p.VehicleNumber == nil && p.EmployeeID == nil
}

type Price struct {
	Base     decimal.Decimal
	Discount int
	Final    decimal.Decimal
}

type CreateJobResult struct {
	ID uuid.UUID
	Price
}

type NotificationStatus string

const (
	NotificationSent     NotificationStatus = "sent"
	NotificationFailed   NotificationStatus = "failed"
	NotificationDisabled NotificationStatus = "disabled"
)

type UpdateJobResult struct {
	Job   *Job
	Price Price
	// Set only when the update completed the job.
	Notification      NotificationStatus
	NotificationError string
}

// JobFilter narrows list and report queries. Empty fields match everything.
type JobFilter struct {
	ID uuid.UUID

	CustomerNameContains string
	EmployeeNameContains string

	VehiclePrefix      string
	ServiceTypePrefix  string
	EmployeeNamePrefix string
	CustomerNamePrefix string

	Status *JobStatus

	StartedFrom *time.Time
	StartedTo   *time.Time
}
