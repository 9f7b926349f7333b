package http

import (
	"net/http"
)

func (h *handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reviewRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rv, err := h.reviews.Create(ctx, modelReviewParams(&req))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, reviewToResponse(*rv))
}

// ListReviews pages through reviews, newest first. Missing or non-positive
// ?page= and ?page_size= fall back to the defaults.
func (h *handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryInt(r, "page")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	size, err := queryInt(r, "page_size")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.reviews.List(ctx, page, size)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, reviewPageToResponse(p))
}
