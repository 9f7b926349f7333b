package http

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// date is a calendar day in YYYY-MM-DD form.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string in %s form", dateLayout)
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("date must be in %s form", dateLayout)
	}
	d.Time = t
	return nil
}

func (d date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ======= Accounts =======

type registerAccountRequest struct {
	Role            string           `json:"role" validate:"required,oneof=admin employee customer"`
	Name            string           `json:"name" validate:"required,min=2,max=50"`
	Email           string           `json:"email" validate:"required,email"`
	Password        string           `json:"password" validate:"required"`
	ConfirmPassword string           `json:"confirm_password" validate:"required"`
	Salary          *decimal.Decimal `json:"salary"`
	JoinedAt        *time.Time       `json:"joined_at"`
	LastWorkingDay  *time.Time       `json:"last_working_day"`
}

type updateAccountRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=2,max=50"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Salary         *decimal.Decimal `json:"salary"`
	IsActive       *bool            `json:"is_active"`
	LastWorkingDay *time.Time       `json:"last_working_day"`
}

type workloadResponse struct {
	InHand   int `json:"in_hand"`
	Finished int `json:"finished"`
}

type loyaltyResponse struct {
	DiscountRemaining int `json:"discount_remaining"`
	FreeServicesUsed  int `json:"free_services_used"`
}

type accountResponse struct {
	ID             uuid.UUID         `json:"id"`
	Role           string            `json:"role"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Salary         *decimal.Decimal  `json:"salary,omitempty"`
	IsActive       bool              `json:"is_active"`
	JoinedAt       time.Time         `json:"joined_at"`
	LastWorkingDay *time.Time        `json:"last_working_day,omitempty"`
	Workload       *workloadResponse `json:"workload,omitempty"`
	Loyalty        *loyaltyResponse  `json:"loyalty,omitempty"`
}

// ======= Services =======

type createServiceRequest struct {
	ServiceType   string     `json:"service_type" validate:"required"`
	VehicleNumber string     `json:"vehicle_number" validate:"required"`
	CustomerID    uuid.UUID  `json:"customer_id" validate:"required"`
	EmployeeID    *uuid.UUID `json:"employee_id"`
}

type updateServiceRequest struct {
	ServiceType   *string    `json:"service_type" validate:"omitempty,min=1"`
	Status        *string    `json:"status" validate:"omitempty,oneof=in_progress completed"`
	VehicleNumber *string    `json:"vehicle_number" validate:"omitempty,min=1"`
	EmployeeID    *uuid.UUID `json:"employee_id"`
}

type priceResponse struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	Discount   int             `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

type createServiceResponse struct {
	ID uuid.UUID `json:"id"`
	priceResponse
}

type serviceResponse struct {
	ID              uuid.UUID        `json:"id"`
	ServiceType     string           `json:"service_type"`
	Status          string           `json:"status"`
	VehicleNumber   string           `json:"vehicle_number"`
	CustomerID      uuid.UUID        `json:"customer_id"`
	CustomerName    string           `json:"customer_name,omitempty"`
	EmployeeID      *uuid.UUID       `json:"employee_id,omitempty"`
	EmployeeName    string           `json:"employee_name,omitempty"`
	DiscountPercent int              `json:"discount_percent"`
	FinalPrice      *decimal.Decimal `json:"final_price"`
	StartedAt       time.Time        `json:"started_at"`
	EndedAt         *time.Time       `json:"ended_at,omitempty"`
}

type updateServiceResponse struct {
	Service            serviceResponse `json:"service"`
	Price              priceResponse   `json:"price"`
	NotificationStatus string          `json:"notification_status,omitempty"`
	NotificationError  string          `json:"notification_error,omitempty"`
}

type priceListEntry struct {
	ServiceType string          `json:"service_type"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

// ======= Reports =======

type salesReportResponse struct {
	Period        string            `json:"period"`
	From          *time.Time        `json:"from,omitempty"`
	To            *time.Time        `json:"to,omitempty"`
	ServicesCount int               `json:"services_count"`
	TotalEarnings decimal.Decimal   `json:"total_earnings"`
	Services      []serviceResponse `json:"services"`
}

type efficiencyEntryResponse struct {
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceType   string    `json:"service_type"`
	VehicleNumber string    `json:"vehicle_number"`
	EmployeeName  string    `json:"employee_name"`
	CustomerName  string    `json:"customer_name"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	TimeTaken     string    `json:"time_taken"`
}

type efficiencyReportResponse struct {
	TotalServices int                       `json:"total_services"`
	TotalTime     string                    `json:"total_time"`
	Details       []efficiencyEntryResponse `json:"details"`
}

// ======= Parts & purchases =======

type partRequest struct {
	Name           string          `json:"name" validate:"required,max=100"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockQuantity  int64           `json:"stock_quantity" validate:"gte=0"`
	ManufacturedOn date            `json:"manufactured_on"`
	ExpiresOn      date            `json:"expiry_date"`
	CompanyName    string          `json:"company_name" validate:"max=100"`
	Description    string          `json:"description" validate:"max=1000"`
}

type partResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	StockQuantity  int64           `json:"stock_quantity"`
	ManufacturedOn date            `json:"manufactured_on"`
	ExpiresOn      date            `json:"expiry_date"`
	CompanyName    string          `json:"company_name"`
	Description    string          `json:"description,omitempty"`
}

type purchaseRequest struct {
	PartID     uuid.UUID `json:"part_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	Quantity   int64     `json:"quantity" validate:"gte=1"`
}

type purchaseResponse struct {
	ID           uuid.UUID       `json:"id"`
	PartID       uuid.UUID       `json:"part_id"`
	PartName     string          `json:"part_name,omitempty"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int64           `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	PurchasedAt  time.Time       `json:"purchased_at"`
}

// ======= Reviews =======

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

type reviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type reviewPageResponse struct {
	Items    []reviewResponse `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	HasNext  bool             `json:"has_next"`
}
