package service

import (
	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/pricing"
)

const (
	msgUnknownServiceType = "unknown service type"
	msgBadVehicleNumber   = "vehicle number must look like MH14fu1234"
)

func validateCreate(p model.CreateJobParams) error {
	v := model.NewValidationError()
	if !pricing.Known(p.ServiceType) {
		v.Add("service_type", msgUnknownServiceType)
	}
	if !model.ValidVehicleNumber(p.VehicleNumber) {
		v.Add("vehicle_number", msgBadVehicleNumber)
	}
	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "customer is required")
	}
	if p.EmployeeID != nil && *p.EmployeeID == uuid.Nil {
		v.Add("employee_id", "employee id is malformed")
	}
	return v.OrNil()
}

func validateUpdate(p model.UpdateJobParams) error {
	if p.Empty() {
		return model.FieldError("status", "nothing to update")
	}

	v := model.NewValidationError()
	if p.ServiceType != nil && !pricing.Known(*p.ServiceType) {
		v.Add("service_type", msgUnknownServiceType)
	}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be one of in_progress, completed")
	}
	if p.VehicleNumber != nil && !model.ValidVehicleNumber(*p.VehicleNumber) {
		v.Add("vehicle_number", msgBadVehicleNumber)
	}
	if p.EmployeeID != nil && *p.EmployeeID == uuid.Nil {
		v.Add("employee_id", "employee id is malformed")
	}
	return v.OrNil()
}
