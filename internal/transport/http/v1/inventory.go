package http

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/carwash/internal/model"
)

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req partRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	part, err := h.inventory.CreatePart(ctx, partRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, partToResponse(*part))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	parts, err := h.inventory.ListParts(ctx, model.PartFilter{
		NamePrefix:    strings.TrimSpace(q.Get("name")),
		CompanyPrefix: strings.TrimSpace(q.Get("company_name")),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, lo.Map(parts, func(p model.Part, _ int) partResponse {
		return partToResponse(p)
	}))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	part, err := h.inventory.Part(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, partToResponse(*part))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req partRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	part, err := h.inventory.UpdatePart(ctx, id, partRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, partToResponse(*part))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.inventory.DeletePart(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req purchaseRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.inventory.RecordPurchase(ctx, model.RecordPurchaseParams{
		PartID:     req.PartID,
		EmployeeID: req.EmployeeID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, purchaseToResponse(*p))
}

func (h *handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		filter model.PurchaseFilter
		err    error
	)
	if filter.PartID, err = queryID(r, "part_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.EmployeeID, err = queryID(r, "employee_id"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.CustomerID, err = queryID(r, "customer_id"); err != nil {
		writeError(ctx, w, err)
		return
	}

	purchases, err := h.inventory.ListPurchases(ctx, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, lo.Map(purchases, func(p model.Purchase, _ int) purchaseResponse {
		return purchaseToResponse(p)
	}))
}

func (h *handler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.inventory.Purchase(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, purchaseToResponse(*p))
}

func (h *handler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.inventory.DeletePurchase(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
