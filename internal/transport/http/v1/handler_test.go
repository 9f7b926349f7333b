package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/internal/service/mocks"
	"github.com/you-humble/carwash/platform/db/txmanager"
	"github.com/you-humble/carwash/platform/logger"
)

type deps struct {
	carwash   *mocks.MockCarwashService
	accounts  *mocks.MockAccountService
	inventory *mocks.MockInventoryService
	reports   *mocks.MockReportService
	reviews   *mocks.MockReviewService
}

func newTestServer(t *testing.T) (http.Handler, deps) {
	t.Helper()
	logger.SetNopLogger()

	d := deps{
		carwash:   mocks.NewMockCarwashService(t),
		accounts:  mocks.NewMockAccountService(t),
		inventory: mocks.NewMockInventoryService(t),
		reports:   mocks.NewMockReportService(t),
		reviews:   mocks.NewMockReviewService(t),
	}

	r := chi.NewRouter()
	NewHandler(d.carwash, d.accounts, d.inventory, d.reports, d.reviews).Register(r)

	return r, d
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestCreateService(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	jobID := uuid.New()

	tests := []struct {
		name     string
		body     string
		setup    func(d deps)
		wantCode int
		check    func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "created with price breakdown",
			body: fmt.Sprintf(`{"service_type":"only_polish","vehicle_number":"MH14fu1234","customer_id":%q}`, customerID),
			setup: func(d deps) {
				d.carwash.On("Create", mock.Anything, model.CreateJobParams{
					ServiceType:   model.ServiceOnlyPolish,
					VehicleNumber: "MH14fu1234",
					CustomerID:    customerID,
				}).Return(&model.CreateJobResult{
					ID: jobID,
					Price: model.Price{
						Base:     decimal.NewFromInt(30),
						Discount: 20,
						Final:    decimal.NewFromInt(24),
					},
				}, nil).Once()
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeBody[map[string]any](t, rec)
				assert.Equal(t, jobID.String(), got["id"])
				assert.Equal(t, "30", got["base_price"])
				assert.EqualValues(t, 20, got["discount"])
				assert.Equal(t, "24", got["final_price"])
			},
		},
		{
			name:     "missing fields are reported per field",
			body:     `{}`,
			setup:    func(deps) {},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeBody[errorResponse](t, rec)
				assert.Equal(t, "validation error", got.Error)
				assert.Contains(t, got.Fields, "service_type")
				assert.Contains(t, got.Fields, "vehicle_number")
				assert.Contains(t, got.Fields, "customer_id")
			},
		},
		{
			name:     "malformed JSON",
			body:     `{"service_type":`,
			setup:    func(deps) {},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeBody[errorResponse](t, rec)
				assert.Contains(t, got.Fields, "body")
			},
		},
		{
			name:     "unknown field is rejected",
			body:     fmt.Sprintf(`{"service_type":"only_body","vehicle_number":"MH14fu1234","customer_id":%q,"price":1}`, customerID),
			setup:    func(deps) {},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeBody[errorResponse](t, rec)
				assert.Contains(t, got.Fields["body"], "price")
			},
		},
		{
			name: "duplicate in-progress job is a conflict",
			body: fmt.Sprintf(`{"service_type":"full_carwash","vehicle_number":"MH14fu1234","customer_id":%q}`, customerID),
			setup: func(d deps) {
				d.carwash.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("carwash.service.Create: %w", model.ErrJobInProgress)).Once()
			},
			wantCode: http.StatusConflict,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeBody[errorResponse](t, rec)
				assert.Equal(t, model.ErrJobInProgress.Error(), got.Error)
			},
		},
		{
			name: "lock timeout asks the caller to retry",
			body: fmt.Sprintf(`{"service_type":"full_carwash","vehicle_number":"MH14fu1234","customer_id":%q}`, customerID),
			setup: func(d deps) {
				d.carwash.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("tx: %w", txmanager.ErrTransient)).Once()
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "internal errors are not leaked",
			body: fmt.Sprintf(`{"service_type":"full_carwash","vehicle_number":"MH14fu1234","customer_id":%q}`, customerID),
			setup: func(d deps) {
				d.carwash.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("pq: relation services does not exist")).Once()
			},
			wantCode: http.StatusInternalServerError,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotContains(t, rec.Body.String(), "relation")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, d := newTestServer(t)
			tt.setup(d)

			rec := do(t, h, http.MethodPost, "/api/v1/services", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestUpdateServiceCompletes(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	id := uuid.New()
	employeeID := uuid.New()
	ended := time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)
	final := decimal.NewFromInt(70)
	status := model.JobCompleted

	d.carwash.On("Update", mock.Anything, id, model.UpdateJobParams{Status: &status}).
		Return(&model.UpdateJobResult{
			Job: &model.Job{
				ID:            id,
				ServiceType:   model.ServiceFullCarwash,
				Status:        model.JobCompleted,
				VehicleNumber: "MH14fu1234",
				CustomerID:    uuid.New(),
				EmployeeID:    &employeeID,
				FinalPrice:    &final,
				StartedAt:     ended.Add(-time.Hour),
				EndedAt:       &ended,
			},
			Price:             model.Price{Base: final, Final: final},
			Notification:      model.NotificationFailed,
			NotificationError: "smtp: connection refused",
		}, nil).Once()

	rec := do(t, h, http.MethodPatch, "/api/v1/services/"+id.String(), `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decodeBody[updateServiceResponse](t, rec)
	assert.Equal(t, "completed", got.Service.Status)
	assert.Equal(t, "failed", got.NotificationStatus)
	assert.Equal(t, "smtp: connection refused", got.NotificationError)
	assert.True(t, got.Price.FinalPrice.Equal(final))
}

func TestUpdateServiceRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPatch, "/api/v1/services/"+uuid.NewString(), `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errorResponse](t, rec)
	assert.Contains(t, got.Fields["status"], "in_progress completed")
}

func TestCompletedServiceStatusChangeIsConflict(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)
	id := uuid.New()

	d.carwash.On("Update", mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("carwash.service.Update: %w", model.ErrJobCompleted)).Once()

	rec := do(t, h, http.MethodPatch, "/api/v1/services/"+id.String(), `{"status":"in_progress"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetServiceBadID(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/services/42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errorResponse](t, rec)
	assert.Contains(t, got.Fields, "id")
}

func TestGetServiceNotFound(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)
	id := uuid.New()

	d.carwash.On("Get", mock.Anything, id).Return(nil, fmt.Errorf("op: %w", model.ErrJobNotFound)).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/services/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "service not found", decodeBody[errorResponse](t, rec).Error)
}

func TestListServicesFilters(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)
	status := model.JobInProgress

	d.carwash.On("List", mock.Anything, model.JobFilter{
		CustomerNameContains: "ann",
		EmployeeNameContains: "bo",
		Status:               &status,
	}).Return([]model.Job{}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/services?customer_name=ann&employee_name=bo&status=in_progress", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteService(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)
	id := uuid.New()

	d.carwash.On("Delete", mock.Anything, id).Return(nil).Once()

	rec := do(t, h, http.MethodDelete, "/api/v1/services/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListPrices(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/prices", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]priceListEntry](t, rec)
	require.Len(t, got, 5)
	prices := map[string]string{}
	for _, e := range got {
		prices[e.ServiceType] = e.BasePrice.String()
	}
	assert.Equal(t, "70", prices["full_carwash"])
	assert.Equal(t, "100", prices["full_with_polish"])
}

func TestRegisterAccount(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	name := "Ann" + gofakeit.LetterN(5)
	email := strings.ToLower(name) + "@example.com"
	id := uuid.New()

	d.accounts.On("Register", mock.Anything, mock.MatchedBy(func(p model.RegisterAccountParams) bool {
		return p.Role == model.RoleCustomer && p.Name == name && p.Password == "s3cret!pass"
	})).Return(&model.Account{
		ID:       id,
		Role:     model.RoleCustomer,
		Name:     name,
		Email:    email,
		IsActive: true,
		Loyalty:  &model.Loyalty{},
	}, nil).Once()

	body := fmt.Sprintf(`{"role":"customer","name":%q,"email":%q,"password":"s3cret!pass","confirm_password":"s3cret!pass"}`,
		name, email)
	rec := do(t, h, http.MethodPost, "/api/v1/accounts", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, id.String(), got["id"])
	assert.NotContains(t, got, "password_hash")
	assert.NotContains(t, got, "workload")
	assert.Contains(t, got, "loyalty")
}

func TestRegisterAccountValidation(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/accounts",
		`{"role":"owner","name":"A","email":"nope","password":"x","confirm_password":"x"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errorResponse](t, rec)
	assert.Contains(t, got.Fields, "role")
	assert.Contains(t, got.Fields, "name")
	assert.Contains(t, got.Fields, "email")
}

func TestRecordPurchaseInsufficientStock(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	d.inventory.On("RecordPurchase", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("op: %w: requested 3, available 2", model.ErrInsufficientStock)).Once()

	body := fmt.Sprintf(`{"part_id":%q,"employee_id":%q,"customer_id":%q,"quantity":3}`,
		uuid.New(), uuid.New(), uuid.New())
	rec := do(t, h, http.MethodPost, "/api/v1/purchases", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, model.ErrInsufficientStock.Error(), decodeBody[errorResponse](t, rec).Error)
}

func TestRecordPurchaseZeroQuantity(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	body := fmt.Sprintf(`{"part_id":%q,"employee_id":%q,"customer_id":%q,"quantity":0}`,
		uuid.New(), uuid.New(), uuid.New())
	rec := do(t, h, http.MethodPost, "/api/v1/purchases", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Fields, "quantity")
}

func TestListPurchasesBadFilter(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/purchases?part_id=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Fields, "part_id")
}

func TestCreatePartParsesDates(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	d.inventory.On("CreatePart", mock.Anything, mock.MatchedBy(func(p model.PartParams) bool {
		return p.ManufacturedOn.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)) &&
			p.ExpiresOn.Equal(time.Date(2028, 1, 10, 0, 0, 0, 0, time.UTC)) &&
			p.UnitPrice.Equal(decimal.RequireFromString("12.50"))
	})).Return(func(_ context.Context, p model.PartParams) (*model.Part, error) {
		return &model.Part{
			ID:             uuid.New(),
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			StockQuantity:  p.StockQuantity,
			ManufacturedOn: p.ManufacturedOn,
			ExpiresOn:      p.ExpiresOn,
			CompanyName:    model.DefaultCompanyName,
		}, nil
	}).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/parts",
		`{"name":"Wax","unit_price":"12.50","stock_quantity":5,"manufactured_on":"2026-01-10","expiry_date":"2028-01-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "2028-01-10", got["expiry_date"])
	assert.Equal(t, "local", got["company_name"])
}

func TestCreatePartBadDate(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/parts",
		`{"name":"Wax","unit_price":"1","stock_quantity":1,"manufactured_on":"10/01/2026","expiry_date":"2028-01-10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSalesReportDefaultsToToday(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	from := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	d.reports.On("CountServices", mock.Anything, model.PeriodToday).Return(&model.SalesSummary{
		Period:        model.PeriodToday,
		From:          from,
		To:            from.AddDate(0, 0, 1),
		ServicesCount: 0,
		TotalEarnings: decimal.Zero,
	}, []model.Job{}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/reports/sales", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "today", got["period"])
	assert.Equal(t, "0", got["total_earnings"])
}

func TestEfficiencyReportFormatsDurations(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	d.reports.On("Efficiency", mock.Anything, model.JobFilter{VehiclePrefix: "MH", EmployeeNamePrefix: "jo"}).
		Return(&model.EfficiencyReport{
			TotalServices: 2,
			TotalElapsed:  26*time.Hour + 5*time.Second,
			Details: []model.EfficiencyEntry{{
				JobID:     uuid.New(),
				StartedAt: start,
				EndedAt:   start.Add(26*time.Hour + 5*time.Second),
				Elapsed:   26*time.Hour + 5*time.Second,
			}},
		}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/reports/efficiency?vehicle_number=MH&employee_name=jo", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[efficiencyReportResponse](t, rec)
	assert.Equal(t, 2, got.TotalServices)
	assert.Equal(t, "26:00:05", got.TotalTime)
	require.Len(t, got.Details, 1)
	assert.Equal(t, "26:00:05", got.Details[0].TimeTaken)
}

func TestListReviews(t *testing.T) {
	t.Parallel()

	h, d := newTestServer(t)

	d.reviews.On("List", mock.Anything, 2, 3).Return(&model.Page[model.Review]{
		Items:    []model.Review{{ID: uuid.New(), Rating: 5, Comment: "spotless"}},
		Total:    7,
		Page:     2,
		PageSize: 3,
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/reviews?page=2&page_size=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[reviewPageResponse](t, rec)
	assert.Equal(t, 7, got.Total)
	assert.True(t, got.HasNext)
	require.Len(t, got.Items, 1)
}

func TestListReviewsBadPage(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/reviews?page=two", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReviewRating(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/reviews", `{"rating":6,"comment":"great"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Fields, "rating")
}
