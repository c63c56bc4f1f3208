package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/peaklift/backend/internal/telemetry/tracing"
)

var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	ErrSetNotFound             = errors.New("workout set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the given page of the user's workouts, newest first,
// together with the total workout count. Page is 1-based.
func (r *Repo) List(ctx context.Context, userID string, page, size int) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, userID)
	if err != nil {
		return nil, -1, err
	}

	limit := size
	offset := (page - 1) * size

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, title, date
			FROM workout
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT $2
			OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, -1, err
	}
	return workouts, countAll, nil
}

func (r *Repo) Count(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) Get(ctx context.Context, userID string, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, title, date FROM workout WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&w.ID, &w.UserID, &w.Title, &w.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetDetails returns the workout with its exercises ordered by display
// order and each exercise's sets ordered by set number.
func (r *Repo) GetDetails(ctx context.Context, userID string, id int) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getdetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	workout, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	exRows, err := r.db.Query(
		ctx,
		`
			SELECT we.id, we.workout_id, we.exercise_id, e.title, we."order", COALESCE(we.notes, '')
			FROM workout_exercise we
			JOIN exercise e ON we.exercise_id = e.id
			WHERE we.workout_id = $1
			ORDER BY we."order";`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer exRows.Close()

	var exercises []WorkoutExercise
	var exerciseIDs []int
	for exRows.Next() {
		var we WorkoutExercise
		if err := exRows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseTitle, &we.Order, &we.Notes); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		we.Sets = make([]WorkoutSet, 0)
		exercises = append(exercises, we)
		exerciseIDs = append(exerciseIDs, we.ID)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	if len(exercises) == 0 {
		return &WorkoutDetails{
			Workout:   *workout,
			Exercises: make([]WorkoutExercise, 0),
		}, nil
	}

	setRows, err := r.db.Query(
		ctx,
		`
			SELECT id, workout_exercise_id, set_number, reps, weight, duration_seconds
			FROM workout_set
			WHERE workout_exercise_id = ANY($1)
			ORDER BY set_number;`,
		exerciseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer setRows.Close()

	sets2exercise := make(map[int][]WorkoutSet)
	for setRows.Next() {
		var s WorkoutSet
		if err := setRows.Scan(&s.ID, &s.WorkoutExerciseID, &s.SetNumber, &s.Reps, &s.Weight, &s.DurationSeconds); err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		sets2exercise[s.WorkoutExerciseID] = append(sets2exercise[s.WorkoutExerciseID], s)
	}
	if err := setRows.Err(); err != nil {
		return nil, err
	}

	for i := range exercises {
		if sets, ok := sets2exercise[exercises[i].ID]; ok {
			exercises[i].Sets = sets
		}
	}

	return &WorkoutDetails{
		Workout:   *workout,
		Exercises: exercises,
	}, nil
}

// FilterByDays returns the user's workouts dated within the last N days,
// newest first. Days must be positive; the zero/negative case is rejected
// at the handler, before this is ever reached.
func (r *Repo) FilterByDays(ctx context.Context, userID string, days int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.filterbydays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	startDate := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, title, date
			FROM workout
			WHERE user_id = $1 AND date >= $2
			ORDER BY date DESC;`,
		userID, startDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2workouts(rows)
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, title, date) VALUES ($1, $2, $3) RETURNING id;`,
		workout.UserID, workout.Title, workout.Date,
	).Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, userID string, id int, title string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET title = $1, date = $2 WHERE id = $3 AND user_id = $4;`,
		title, date, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Delete removes the workout; its exercises and sets go with it via the
// foreign key cascade.
func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// AddExercise appends an exercise to the workout with order = sibling
// count + 1. The count and the insert happen in one statement; concurrent
// appends to the same workout are still last-count-wins (single writer per
// workout assumed).
func (r *Repo) AddExercise(ctx context.Context, userID string, workoutID, exerciseID int) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	we := WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       make([]WorkoutSet, 0),
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_exercise (workout_id, exercise_id, "order")
			SELECT $1, $2, (SELECT COUNT(*) FROM workout_exercise WHERE workout_id = $1) + 1
			WHERE EXISTS (SELECT 1 FROM workout WHERE id = $1 AND user_id = $3)
			RETURNING id, "order";`,
		workoutID, exerciseID, userID,
	).Scan(&we.ID, &we.Order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT title FROM exercise WHERE id = $1;`,
		exerciseID,
	).Scan(&we.ExerciseTitle); err != nil {
		return nil, fmt.Errorf("get exercise title: %w", err)
	}

	return &we, nil
}

// Reorder renumbers the workout's exercises densely from 1, in the relative
// order given by the supplied items (sorted by their order field). Items
// referencing exercises not in the workout are silently ignored. Last
// writer wins against concurrent structural changes.
func (r *Repo) Reorder(ctx context.Context, userID string, workoutID int, items []ReorderItem) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))
	span.SetAttributes(attribute.Int("items", len(items)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var ownedID int
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM workout WHERE id = $1 AND user_id = $2;`,
		workoutID, userID,
	).Scan(&ownedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWorkoutNotFound
	}
	if err != nil {
		return err
	}

	rows, err := tx.Query(
		ctx,
		`SELECT id FROM workout_exercise WHERE workout_id = $1;`,
		workoutID,
	)
	if err != nil {
		return err
	}
	current := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		current[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, item := range denseRenumber(reorderSequence(items, current)) {
		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_exercise SET "order" = $1 WHERE id = $2;`,
			item.Order, item.WorkoutExerciseID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteExercise removes the workout exercise (its sets cascade) and
// renumbers the remaining siblings densely from 1, in ascending order of
// their prior order value.
func (r *Repo) DeleteExercise(ctx context.Context, userID string, workoutExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workoutExercise.id", workoutExerciseID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var workoutID int
	err = tx.QueryRow(
		ctx,
		`
			SELECT we.workout_id
			FROM workout_exercise we
			JOIN workout w ON we.workout_id = w.id
			WHERE we.id = $1 AND w.user_id = $2;`,
		workoutExerciseID, userID,
	).Scan(&workoutID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWorkoutExerciseNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		`DELETE FROM workout_exercise WHERE id = $1;`,
		workoutExerciseID,
	); err != nil {
		return err
	}

	rows, err := tx.Query(
		ctx,
		`SELECT id FROM workout_exercise WHERE workout_id = $1 ORDER BY "order";`,
		workoutID,
	)
	if err != nil {
		return err
	}
	var remaining []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		remaining = append(remaining, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, item := range denseRenumber(remaining) {
		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_exercise SET "order" = $1 WHERE id = $2;`,
			item.Order, item.WorkoutExerciseID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// AddSet records a set under the workout exercise; ownership is resolved
// transitively through the parent workout.
func (r *Repo) AddSet(ctx context.Context, userID string, workoutExerciseID int, set WorkoutSet) (_ *WorkoutSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workoutExercise.id", workoutExerciseID))

	set.WorkoutExerciseID = workoutExerciseID
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_set (workout_exercise_id, set_number, reps, weight, duration_seconds)
			SELECT $1, $2, $3, $4, $5
			WHERE EXISTS (
				SELECT 1
				FROM workout_exercise we
				JOIN workout w ON we.workout_id = w.id
				WHERE we.id = $1 AND w.user_id = $6
			)
			RETURNING id;`,
		workoutExerciseID, set.SetNumber, set.Reps, set.Weight, set.DurationSeconds, userID,
	).Scan(&set.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutExerciseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &set, nil
}

func (r *Repo) UpdateSet(ctx context.Context, userID string, setID, reps int, weight *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE workout_set SET reps = $1, weight = $2
			WHERE id = $3 AND workout_exercise_id IN (
				SELECT we.id
				FROM workout_exercise we
				JOIN workout w ON we.workout_id = w.id
				WHERE w.user_id = $4
			);`,
		reps, weight, setID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, userID string, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM workout_set
			WHERE id = $1 AND workout_exercise_id IN (
				SELECT we.id
				FROM workout_exercise we
				JOIN workout w ON we.workout_id = w.id
				WHERE w.user_id = $2
			);`,
		setID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// Recent returns the user's newest workouts, at most limit of them.
func (r *Repo) Recent(ctx context.Context, userID string, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, title, date
			FROM workout
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2workouts(rows)
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.Date); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}
