package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/carwash/internal/model"
	"github.com/you-humble/carwash/platform/logger"
)

type JobRepository interface {
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
}

type service struct {
	jobs          JobRepository
	now           func() time.Time
	loc           *time.Location
	readDBTimeout time.Duration
}

func NewReportService(jobs JobRepository, now func() time.Time, loc *time.Location, readDBTimeout time.Duration) *service {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{jobs: jobs, now: now, loc: loc, readDBTimeout: readDBTimeout}
}

// Window returns the half-open [from, to) range of p around now. ok is
// false for an unknown period.
func Window(p model.Period, now time.Time) (from, to time.Time, ok bool) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch p {
	case model.PeriodToday:
		return today, today.AddDate(0, 0, 1), true
	case model.PeriodYesterday:
		return today.AddDate(0, 0, -1), today, true
	case model.PeriodWeekly:
		// Monday is the first day of the week.
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7), true
	case model.PeriodMonthly:
		first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// CountServices lists jobs started within the period and sums their final
// prices. An unknown period yields an empty summary.
func (svc *service) CountServices(ctx context.Context, period model.Period) (*model.SalesSummary, []model.Job, error) {
	const op string = "report.service.CountServices"
	log := logger.With(logger.String("period", string(period)))

	if period == "" {
		period = model.PeriodToday
	}

	from, to, ok := Window(period, svc.now().In(svc.loc))
	if !ok {
		log.Debug(ctx, "unknown period")
		return &model.SalesSummary{Period: period, TotalEarnings: decimal.Zero}, []model.Job{}, nil
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	jobs, err := svc.jobs.List(rdbCtx, model.JobFilter{StartedFrom: &from, StartedTo: &to})
	if err != nil {
		log.Error(ctx, "repository list jobs", logger.ErrorF(err))
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	total := lo.Reduce(jobs, func(acc decimal.Decimal, j model.Job, _ int) decimal.Decimal {
		if j.FinalPrice == nil {
			return acc
		}
		return acc.Add(*j.FinalPrice)
	}, decimal.Zero)

	return &model.SalesSummary{
		Period:        period,
		From:          from,
		To:            to,
		ServicesCount: len(jobs),
		TotalEarnings: total,
	}, jobs, nil
}

// Efficiency reports elapsed time per finished job among those matching the
// filter. Unfinished jobs count towards TotalServices only.
func (svc *service) Efficiency(ctx context.Context, filter model.JobFilter) (*model.EfficiencyReport, error) {
	const op string = "report.service.Efficiency"

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	jobs, err := svc.jobs.List(rdbCtx, filter)
	if err != nil {
		logger.Error(ctx, "repository list jobs", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details := lo.FilterMap(jobs, func(j model.Job, _ int) (model.EfficiencyEntry, bool) {
		if j.EndedAt == nil {
			return model.EfficiencyEntry{}, false
		}
		return model.EfficiencyEntry{
			JobID:         j.ID,
			ServiceType:   j.ServiceType,
			VehicleNumber: j.VehicleNumber,
			EmployeeName:  j.EmployeeName,
			CustomerName:  j.CustomerName,
			StartedAt:     j.StartedAt,
			EndedAt:       *j.EndedAt,
			Elapsed:       j.EndedAt.Sub(j.StartedAt),
		}, true
	})

	return &model.EfficiencyReport{
		TotalServices: len(jobs),
		TotalElapsed:  lo.SumBy(details, func(e model.EfficiencyEntry) time.Duration { return e.Elapsed }),
		Details:       details,
	}, nil
}

// FormatHMS renders d as HH:MM:SS. Hours are not wrapped at 24 and negative
// durations render as 00:00:00.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
