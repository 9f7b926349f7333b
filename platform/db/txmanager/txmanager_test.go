package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")

	tests := []struct {
		name          string
		err           error
		wantTransient bool
		wantUnique    bool
	}{
		{name: "nil", err: nil},
		{name: "non postgres error is untouched", err: plain},
		{
			name:          "lock timeout is transient",
			err:           fmt.Errorf("select: %w", &pgconn.PgError{Code: codeLockNotAvailable}),
			wantTransient: true,
		},
		{
			name:          "serialization failure is transient",
			err:           &pgconn.PgError{Code: codeSerializationFailure},
			wantTransient: true,
		},
		{
			name:          "deadlock is transient",
			err:           &pgconn.PgError{Code: codeDeadlockDetected},
			wantTransient: true,
		},
		{
			name:          "expired deadline is transient",
			err:           fmt.Errorf("select job for update: %w", context.DeadlineExceeded),
			wantTransient: true,
		},
		{
			name: "canceled context is untouched",
			err:  fmt.Errorf("select job for update: %w", context.Canceled),
		},
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "services_in_progress_uniq"},
			wantUnique: true,
		},
		{
			name: "other postgres error is untouched",
			err:  &pgconn.PgError{Code: "42P01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}

			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantTransient, errors.Is(got, ErrTransient))
			assert.Equal(t, tt.wantUnique, errors.Is(got, ErrUniqueViolation))
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Classify(&pgconn.PgError{Code: codeLockNotAvailable})
	twice := Classify(once)

	assert.Equal(t, once.Error(), twice.Error())
}

func TestConstraintName(t *testing.T) {
	t.Parallel()

	err := Classify(fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "parts_name_key"}))

	assert.Equal(t, "parts_name_key", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("boom")))
}
