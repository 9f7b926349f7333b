package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) (uuid.UUID, error)
	List(ctx context.Context, limit, offset int) ([]model.Review, int, error)
}

type service struct {
	repo           ReviewRepository
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewReviewService(repo ReviewRepository, now func() time.Time, readDBTimeout, writeDBTimeout time.Duration) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now, readDBTimeout: readDBTimeout, writeDBTimeout: writeDBTimeout}
}

func (svc *service) Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error) {
	const op string = "review.service.Create"

	params.Comment = strings.TrimSpace(params.Comment)
	if err := params.Validate(); err != nil {
		logger.Warn(ctx, "invalid params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r := &model.Review{Rating: params.Rating, Comment: params.Comment, CreatedAt: svc.now()}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, r)
	if err != nil {
		logger.Error(ctx, "repository create review", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	r.ID = id

	return r, nil
}

// List returns one page of reviews, newest first. page starts at 1; a zero
// pageSize means the default and larger sizes are capped.
func (svc *service) List(ctx context.Context, page, pageSize int) (*model.Page[model.Review], error) {
	const op string = "review.service.List"

	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = model.DefaultReviewPageSize
	case pageSize > model.MaxReviewPageSize:
		pageSize = model.MaxReviewPageSize
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	items, total, err := svc.repo.List(rdbCtx, pageSize, (page-1)*pageSize)
	if err != nil {
		logger.Error(ctx, "repository list reviews", logger.Int("page", page), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Page[model.Review]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
