package http

import (
	"github.com/samber/lo"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/pricing"
	reportsvc "github.com/you-humble/carwash/internal/service/report"
)

func registerRequestToParams(req *registerAccountRequest) model.RegisterAccountParams {
	return model.RegisterAccountParams{
		Role:            model.Role(req.Role),
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Salary:          req.Salary,
		JoinedAt:        req.JoinedAt,
		LastWorkingDay:  req.LastWorkingDay,
	}
}

func updateAccountRequestToParams(req *updateAccountRequest) model.UpdateAccountParams {
	return model.UpdateAccountParams{
		Name:           req.Name,
		Email:          req.Email,
		Salary:         req.Salary,
		IsActive:       req.IsActive,
		LastWorkingDay: req.LastWorkingDay,
	}
}

func accountToResponse(a *model.Account) accountResponse {
	out := accountResponse{
		ID:             a.ID,
		Role:           string(a.Role),
		Name:           a.Name,
		Email:          a.Email,
		Salary:         a.Salary,
		IsActive:       a.IsActive,
		JoinedAt:       a.JoinedAt,
		LastWorkingDay: a.LastWorkingDay,
	}
	if a.Workload != nil {
		out.Workload = &workloadResponse{InHand: a.Workload.InHand, Finished: a.Workload.Finished}
	}
	if a.Loyalty != nil {
		out.Loyalty = &loyaltyResponse{
			DiscountRemaining: a.Loyalty.DiscountRemaining,
			FreeServicesUsed:  a.Loyalty.FreeServicesUsed,
		}
	}
	return out
}

func createServiceRequestToParams(req *createServiceRequest) model.CreateJobParams {
	return model.CreateJobParams{
		ServiceType:   model.ServiceType(req.ServiceType),
		VehicleNumber: req.VehicleNumber,
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
	}
}

func updateServiceRequestToParams(req *updateServiceRequest) model.UpdateJobParams {
	params := model.UpdateJobParams{
		VehicleNumber: req.VehicleNumber,
		EmployeeID:    req.EmployeeID,
	}
	if req.ServiceType != nil {
		params.ServiceType = lo.ToPtr(model.ServiceType(*req.ServiceType))
	}
	if req.Status != nil {
		params.Status = lo.ToPtr(model.JobStatus(*req.Status))
	}
	return params
}

func priceToResponse(p model.Price) priceResponse {
	return priceResponse{BasePrice: p.Base, Discount: p.Discount, FinalPrice: p.Final}
}

func jobToResponse(j model.Job) serviceResponse {
	return serviceResponse{
		ID:              j.ID,
		ServiceType:     string(j.ServiceType),
		Status:          string(j.Status),
		VehicleNumber:   j.VehicleNumber,
		CustomerID:      j.CustomerID,
		CustomerName:    j.CustomerName,
		EmployeeID:      j.EmployeeID,
		EmployeeName:    j.EmployeeName,
		DiscountPercent: j.DiscountPercent,
		FinalPrice:      j.FinalPrice,
		StartedAt:       j.StartedAt,
		EndedAt:         j.EndedAt,
	}
}

func jobsToResponse(jobs []model.Job) []serviceResponse {
	return lo.Map(jobs, func(j model.Job, _ int) serviceResponse { return jobToResponse(j) })
}

func updateResultToResponse(res *model.UpdateJobResult) updateServiceResponse {
	return updateServiceResponse{
		Service:            jobToResponse(*res.Job),
		Price:              priceToResponse(res.Price),
		NotificationStatus: string(res.Notification),
		NotificationError:  res.NotificationError,
	}
}

func priceList() []priceListEntry {
	return lo.Map(pricing.ServiceTypes(), func(t model.ServiceType, _ int) priceListEntry {
		return priceListEntry{ServiceType: string(t), BasePrice: pricing.BasePrice(t)}
	})
}

func salesToResponse(s *model.SalesSummary, jobs []model.Job) salesReportResponse {
	out := salesReportResponse{
		Period:        string(s.Period),
		ServicesCount: s.ServicesCount,
		TotalEarnings: s.TotalEarnings,
		Services:      jobsToResponse(jobs),
	}
	if !s.From.IsZero() {
		out.From, out.To = lo.ToPtr(s.From), lo.ToPtr(s.To)
	}
	return out
}

func efficiencyToResponse(r *model.EfficiencyReport) efficiencyReportResponse {
	return efficiencyReportResponse{
		TotalServices: r.TotalServices,
		TotalTime:     reportsvc.FormatHMS(r.TotalElapsed),
		Details: lo.Map(r.Details, func(e model.EfficiencyEntry, _ int) efficiencyEntryResponse {
			return efficiencyEntryResponse{
				ServiceID:     e.JobID,
				ServiceType:   string(e.ServiceType),
				VehicleNumber: e.VehicleNumber,
				EmployeeName:  e.EmployeeName,
				CustomerName:  e.CustomerName,
				StartedAt:     e.StartedAt,
				EndedAt:       e.EndedAt,
				TimeTaken:     reportsvc.FormatHMS(e.Elapsed),
			}
		}),
	}
}

func partRequestToParams(req *partRequest) model.PartParams {
	return model.PartParams{
		Name:           req.Name,
		UnitPrice:      req.UnitPrice,
		StockQuantity:  req.StockQuantity,
		ManufacturedOn: req.ManufacturedOn.Time,
		ExpiresOn:      req.ExpiresOn.Time,
		CompanyName:    req.CompanyName,
		Description:    req.Description,
	}
}

func partToResponse(p model.Part) partResponse {
	return partResponse{
		ID:             p.ID,
		Name:           p.Name,
		UnitPrice:      p.UnitPrice,
		StockQuantity:  p.StockQuantity,
		ManufacturedOn: date{p.ManufacturedOn},
		ExpiresOn:      date{p.ExpiresOn},
		CompanyName:    p.CompanyName,
		Description:    p.Description,
	}
}

func purchaseToResponse(p model.Purchase) purchaseResponse {
	return purchaseResponse{
		ID:           p.ID,
		PartID:       p.PartID,
		PartName:     p.PartName,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		UnitPrice:    p.PartUnitPrice,
		Quantity:     p.Quantity,
		TotalPrice:   p.TotalPrice,
		PurchasedAt:  p.PurchasedAt,
	}
}

func reviewToResponse(r model.Review) reviewResponse {
	return reviewResponse{ID: r.ID, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt}
}

func reviewPageToResponse(p *model.Page[model.Review]) reviewPageResponse {
	return reviewPageResponse{
		Items:    lo.Map(p.Items, func(r model.Review, _ int) reviewResponse { return reviewToResponse(r) }),
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext(),
	}
}

func modelReviewParams(req *reviewRequest) model.CreateReviewParams {
	return model.CreateReviewParams{Rating: req.Rating, Comment: req.Comment}
}
