package http

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/carwash/internal/model"
)

func (h *handler) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerAccountRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	acc, err := h.accounts.Register(ctx, registerRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, accountToResponse(acc))
}

func (h *handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	accs, err := h.accounts.List(ctx, model.AccountFilter{
		Role:         model.Role(strings.TrimSpace(q.Get("role"))),
		NameContains: strings.TrimSpace(q.Get("name")),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, lo.Map(accs, func(a model.Account, _ int) accountResponse {
		return accountToResponse(&a)
	}))
}

func (h *handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	acc, err := h.accounts.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, accountToResponse(acc))
}

func (h *handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateAccountRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	acc, err := h.accounts.Update(ctx, id, updateAccountRequestToParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, accountToResponse(acc))
}
