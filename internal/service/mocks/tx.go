package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// NewPassthroughTx returns a tx manager mock that runs fn with the caller's
// context for every ReadCommitted call.
func NewPassthroughTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTxManager {
	m := NewMockTxManager(t)
	m.On("ReadCommitted", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		Maybe()
	return m
}
