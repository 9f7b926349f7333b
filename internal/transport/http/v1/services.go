package http

import (
	"net/http"
	"strings"

	"github.com/you-humble/carwash/internal/model"
)

func (h *handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, priceList())
}

func (h *handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createServiceRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.carwash.Create(ctx, createServiceRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, createServiceResponse{
		ID:            res.ID,
		priceResponse: priceToResponse(res.Price),
	})
}

// ListServices filters by case-insensitive substrings of the customer and
// employee names and by exact id.
func (h *handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	id, err := queryID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := model.JobFilter{
		ID:                   id,
		CustomerNameContains: strings.TrimSpace(q.Get("customer_name")),
		EmployeeNameContains: strings.TrimSpace(q.Get("employee_name")),
	}
	if s := strings.TrimSpace(q.Get("status")); s != "" {
		status := model.JobStatus(s)
		if !status.Valid() {
			writeError(ctx, w, model.FieldError("status", "must be one of: in_progress completed"))
			return
		}
		filter.Status = &status
	}

	jobs, err := h.carwash.List(ctx, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, jobsToResponse(jobs))
}

func (h *handler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := h.carwash.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, jobToResponse(*job))
}

func (h *handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateServiceRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.carwash.Update(ctx, id, updateServiceRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updateResultToResponse(res))
}

func (h *handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.carwash.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
