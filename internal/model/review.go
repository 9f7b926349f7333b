package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultReviewPageSize = 2
	MaxReviewPageSize     = 3
)

type Review struct {
	ID        uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

const MaxReviewCommentLen = 500

type CreateReviewParams struct {
	Rating  int
	Comment string
}

func (p CreateReviewParams) Validate() error {
	v := NewValidationError()
	if p.Rating < 1 || p.Rating > 5 {
		v.Add("rating", "must be between 1 and 5")
	}
	switch {
	case p.Comment == "":
		v.Add("comment", "comment is required")
	case len([]rune(p.Comment)) > MaxReviewCommentLen:
		v.Add("comment", "must be at most 500 characters")
	}
	return v.OrNil()
}

type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

func (p Page[T]) HasNext() bool {
	return p.Page*p.PageSize < p.Total
}
