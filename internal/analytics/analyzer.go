package analytics

import (
	"context"
	"time"

	"github.com/peaklift/backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analytics_mocks_test.go -package=analytics_test

type analyticsRepo interface {
	SummaryAggregates(ctx context.Context, userID string, since *time.Time) (*Aggregates, error)
	SetsPerDay(ctx context.Context, userID string, since *time.Time) ([]SetsPerDayEntry, error)
	BodyPartDistribution(ctx context.Context, userID string, since *time.Time) ([]BodyPartCount, error)
	WorkoutFrequency(ctx context.Context, userID string, since *time.Time) ([]DayCount, error)
}

// Analyzer computes the derived training scores on top of the raw store
// aggregates. Days semantics everywhere: 0 means all time, positive means
// the last N days.
type Analyzer struct {
	repo analyticsRepo
}

func NewAnalyzer(repo analyticsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) Summary(ctx context.Context, userID string, days int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	agg, err := a.repo.SummaryAggregates(ctx, userID, sinceFromDays(days))
	if err != nil {
		return nil, err
	}

	avgSetsPerWorkout := 0.0
	if agg.TotalWorkouts > 0 {
		avgSetsPerWorkout = float64(agg.TotalSets) / float64(agg.TotalWorkouts)
	}

	// with no day window the score is relative to the days actually
	// trained, so any training at all yields 100
	effectiveRange := days
	if effectiveRange <= 0 {
		effectiveRange = agg.ActiveDays
		if effectiveRange < 1 {
			effectiveRange = 1
		}
	}
	consistencyScore := float64(agg.ActiveDays) / float64(effectiveRange) * 100

	return &Summary{
		TotalWorkouts:     agg.TotalWorkouts,
		TotalSets:         agg.TotalSets,
		TotalVolume:       agg.TotalVolume,
		AvgRepsPerSet:     agg.AvgRepsPerSet,
		AvgSetsPerWorkout: avgSetsPerWorkout,
		ActiveDays:        agg.ActiveDays,
		ConsistencyScore:  consistencyScore,
	}, nil
}

func (a *Analyzer) SetsPerDay(ctx context.Context, userID string, days int) ([]SetsPerDayEntry, error) {
	return a.repo.SetsPerDay(ctx, userID, sinceFromDays(days))
}

func (a *Analyzer) BodyPartDistribution(ctx context.Context, userID string, days int) ([]BodyPartCount, error) {
	return a.repo.BodyPartDistribution(ctx, userID, sinceFromDays(days))
}

func (a *Analyzer) WorkoutFrequency(ctx context.Context, userID string, days int) ([]DayCount, error) {
	return a.repo.WorkoutFrequency(ctx, userID, sinceFromDays(days))
}

func sinceFromDays(days int) *time.Time {
	if days <= 0 {
		return nil
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return &since
}
