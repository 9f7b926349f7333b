package http

import (
	"net/http"
	"strings"

	"github.com/you-humble/carwash/internal/model"
)

// SalesReport counts the services started in ?period= and sums their final
// prices. An unknown period answers with an empty report.
func (h *handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	period := model.Period(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("period"))))
	if period == "" {
		period = model.PeriodToday
	}

	summary, jobs, err := h.reports.CountServices(ctx, period)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, salesToResponse(summary, jobs))
}

func (h *handler) EfficiencyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	rep, err := h.reports.Efficiency(ctx, model.JobFilter{
		VehiclePrefix:      strings.TrimSpace(q.Get("vehicle_number")),
		ServiceTypePrefix:  strings.TrimSpace(q.Get("service_type")),
		EmployeeNamePrefix: strings.TrimSpace(q.Get("employee_name")),
		CustomerNamePrefix: strings.TrimSpace(q.Get("customer_name")),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, efficiencyToResponse(rep))
}
