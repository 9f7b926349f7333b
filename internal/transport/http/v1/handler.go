package http

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
)

type CarwashService interface {
	Create(ctx context.Context, params model.CreateJobParams) (*model.CreateJobResult, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateJobParams) (*model.UpdateJobResult, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountService interface {
	Register(ctx context.Context, params model.RegisterAccountParams) (*model.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	List(ctx context.Context, filter model.AccountFilter) ([]model.Account, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateAccountParams) (*model.Account, error)
}

type InventoryService interface {
	CreatePart(ctx context.Context, params model.PartParams) (*model.Part, error)
	Part(ctx context.Context, id uuid.UUID) (*model.Part, error)
	ListParts(ctx context.Context, filter model.PartFilter) ([]model.Part, error)
	UpdatePart(ctx context.Context, id uuid.UUID, params model.PartParams) (*model.Part, error)
	DeletePart(ctx context.Context, id uuid.UUID) error

	RecordPurchase(ctx context.Context, params model.RecordPurchaseParams) (*model.Purchase, error)
	Purchase(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	ListPurchases(ctx context.Context, filter model.PurchaseFilter) ([]model.Purchase, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) error
}

type ReportService interface {
	CountServices(ctx context.Context, period model.Period) (*model.SalesSummary, []model.Job, error)
	Efficiency(ctx context.Context, filter model.JobFilter) (*model.EfficiencyReport, error)
}

type ReviewService interface {
	Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error)
	List(ctx context.Context, page, pageSize int) (*model.Page[model.Review], error)
}

type handler struct {
	carwash   CarwashService
	accounts  AccountService
	inventory InventoryService
	reports   ReportService
	reviews   ReviewService

	validate *validator.Validate
}

func NewHandler(
	carwash CarwashService,
	accounts AccountService,
	inventory InventoryService,
	reports ReportService,
	reviews ReviewService,
) *handler {
	return &handler{
		carwash:   carwash,
		accounts:  accounts,
		inventory: inventory,
		reports:   reports,
		reviews:   reviews,
		validate:  newValidator(),
	}
}

// Register mounts the v1 API under /api/v1.
func (h *handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/prices", h.ListPrices)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.RegisterAccount)
			r.Get("/", h.ListAccounts)
			r.Get("/{id}", h.GetAccount)
			r.Patch("/{id}", h.UpdateAccount)
		})

		r.Route("/services", func(r chi.Router) {
			r.Post("/", h.CreateService)
			r.Get("/", h.ListServices)
			r.Get("/{id}", h.GetService)
			r.Patch("/{id}", h.UpdateService)
			r.Delete("/{id}", h.DeleteService)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", h.SalesReport)
			r.Get("/efficiency", h.EfficiencyReport)
		})

		r.Route("/parts", func(r chi.Router) {
			r.Post("/", h.CreatePart)
			r.Get("/", h.ListParts)
			r.Get("/{id}", h.GetPart)
			r.Put("/{id}", h.UpdatePart)
			r.Delete("/{id}", h.DeletePart)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Post("/", h.RecordPurchase)
			r.Get("/", h.ListPurchases)
			r.Get("/{id}", h.GetPurchase)
			r.Delete("/{id}", h.DeletePurchase)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", h.CreateReview)
			r.Get("/", h.ListReviews)
		})
	})
}
