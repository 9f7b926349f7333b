package repository

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/carwash/internal/model"
)

func TestApplyFilterEmptyMatchesEverything(t *testing.T) {
	t.Parallel()

	r := NewJobRepository(nil)
	sqlStr, args, err := applyFilter(r.selectWithNames(), model.JobFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sqlStr, "WHERE")
	assert.Empty(t, args)
}

func TestApplyFilter(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	status := model.JobCompleted
	id := uuid.New()

	f := model.JobFilter{
		ID:                 id,
		VehiclePrefix:      "AB1_",
		EmployeeNamePrefix: "jo",
		CustomerNamePrefix: "an",
		Status:             &status,
		StartedFrom:        &from,
		StartedTo:          &to,
	}

	sqlStr, args, err := applyFilter(sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("1").From("services s"), f).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "s.id = $1")
	assert.Contains(t, sqlStr, "s.vehicle_number ILIKE $2")
	assert.Contains(t, sqlStr, "e.name ILIKE $3")
	assert.Contains(t, sqlStr, "c.name ILIKE $4")
	assert.Contains(t, sqlStr, "s.status = $5")
	assert.Contains(t, sqlStr, "s.started_at >= $6")
	assert.Contains(t, sqlStr, "s.started_at < $7")
	assert.Equal(t, []any{id, `AB1\_%`, "jo%", "an%", status, from, to}, args)
}
