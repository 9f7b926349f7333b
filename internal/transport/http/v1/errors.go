package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/db/txmanager"
	"github.com/you-humble/carwash/platform/logger"
)

// Sentinels whose text is safe to show to clients, most specific first.
var publicErrors = []error{
	model.ErrAccountNotFound,
	model.ErrCustomerNotFound,
	model.ErrEmployeeNotFound,
	model.ErrJobNotFound,
	model.ErrPartNotFound,
	model.ErrPurchaseNotFound,
	model.ErrReviewNotFound,
	model.ErrJobInProgress,
	model.ErrJobCompleted,
	model.ErrDuplicateEmail,
	model.ErrDuplicateName,
	model.ErrDuplicatePart,
	model.ErrPurchaseKeyUsed,
	model.ErrInsufficientStock,
	model.ErrNotFound,
	model.ErrConflict,
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, txmanager.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: http.StatusText(status)}

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Error, resp.Fields = model.ErrValidation.Error(), verr.Fields
	case status == http.StatusServiceUnavailable:
		resp.Error = "temporarily unavailable, retry the request"
	case status == http.StatusInternalServerError:
		logger.Error(ctx, "request failed", logger.ErrorF(err))
	default:
		for _, pub := range publicErrors {
			if errors.Is(err, pub) {
				resp.Error = pub.Error()
				break
			}
		}
	}

	writeJSON(ctx, w, status, resp)
}
