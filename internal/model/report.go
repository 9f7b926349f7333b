package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
)

type SalesSummary struct {
	Period        Period
	From          time.Time
	To            time.Time
	ServicesCount int
	TotalEarnings decimal.Decimal
}

type EfficiencyEntry struct {
	JobID         uuid.UUID
	ServiceType   ServiceType
	VehicleNumber string
	EmployeeName  string
	CustomerName  string
	StartedAt     time.Time
	EndedAt       time.Time
	Elapsed       time.Duration
}

type EfficiencyReport struct {
	// Every matched job, including those still in progress.
	TotalServices int
	// Sum of Elapsed over Details.
	TotalElapsed time.Duration
	Details      []EfficiencyEntry
}
