package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/peaklift/backend/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// SummaryAggregates pulls the raw training aggregates for the user. A nil
// since means all time.
func (r *Repo) SummaryAggregates(ctx context.Context, userID string, since *time.Time) (_ *Aggregates, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT
			COUNT(DISTINCT w.id),
			COUNT(s.id),
			COALESCE(SUM(s.reps), 0),
			COALESCE(AVG(s.reps), 0),
			COUNT(DISTINCT date_trunc('day', w.date))
		FROM workout w
		LEFT JOIN workout_exercise we ON we.workout_id = w.id
		LEFT JOIN workout_set s ON s.workout_exercise_id = we.id
		WHERE w.user_id = $1`
	args := []any{userID}
	if since != nil {
		query += " AND w.date >= $2"
		args = append(args, *since)
	}

	var agg Aggregates
	if err := r.db.QueryRow(ctx, query+";", args...).Scan(
		&agg.TotalWorkouts,
		&agg.TotalSets,
		&agg.TotalVolume,
		&agg.AvgRepsPerSet,
		&agg.ActiveDays,
	); err != nil {
		return nil, fmt.Errorf("get summary aggregates: %w", err)
	}

	span.SetAttributes(attribute.Int("totalWorkouts", agg.TotalWorkouts))

	return &agg, nil
}

// SetsPerDay returns per calendar day set counts, ascending by day. Days
// without any sets are absent.
func (r *Repo) SetsPerDay(ctx context.Context, userID string, since *time.Time) (_ []SetsPerDayEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.setsperday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT date_trunc('day', w.date) AS day, COUNT(s.id)
		FROM workout w
		JOIN workout_exercise we ON we.workout_id = w.id
		JOIN workout_set s ON s.workout_exercise_id = we.id
		WHERE w.user_id = $1`
	args := []any{userID}
	if since != nil {
		query += " AND w.date >= $2"
		args = append(args, *since)
	}
	query += `
		GROUP BY day
		ORDER BY day;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]SetsPerDayEntry, 0)
	for rows.Next() {
		var e SetsPerDayEntry
		if err := rows.Scan(&e.Date, &e.Sets); err != nil {
			return nil, fmt.Errorf("scan sets per day entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// BodyPartDistribution counts workout exercises per body part, most
// trained first. Each exercise entry counts once regardless of its sets.
func (r *Repo) BodyPartDistribution(ctx context.Context, userID string, since *time.Time) (_ []BodyPartCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.bodyparts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT bg.name, COUNT(we.id)
		FROM workout w
		JOIN workout_exercise we ON we.workout_id = w.id
		JOIN exercise e ON we.exercise_id = e.id
		JOIN body_group bg ON e.body_group_id = bg.id
		WHERE w.user_id = $1`
	args := []any{userID}
	if since != nil {
		query += " AND w.date >= $2"
		args = append(args, *since)
	}
	query += `
		GROUP BY bg.name
		ORDER BY COUNT(we.id) DESC, bg.name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]BodyPartCount, 0)
	for rows.Next() {
		var c BodyPartCount
		if err := rows.Scan(&c.BodyPart, &c.Count); err != nil {
			return nil, fmt.Errorf("scan body part count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// WorkoutFrequency returns workouts per calendar day, ascending by day.
func (r *Repo) WorkoutFrequency(ctx context.Context, userID string, since *time.Time) (_ []DayCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.frequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT date_trunc('day', date) AS day, COUNT(*)
		FROM workout
		WHERE user_id = $1`
	args := []any{userID}
	if since != nil {
		query += " AND date >= $2"
		args = append(args, *since)
	}
	query += `
		GROUP BY day
		ORDER BY day;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]DayCount, 0)
	for rows.Next() {
		var c DayCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("scan workout frequency entry: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
