package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/peaklift/backend/internal/telemetry/tracing"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrBodyGroupNotFound = errors.New("body group not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT e.id, e.title, COALESCE(e.description, ''), e.body_group_id, bg.name, COALESCE(e.image_public_id, '')
			FROM exercise e
			JOIN body_group bg ON e.body_group_id = bg.id
			ORDER BY e.title;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2exercises(rows)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT e.id, e.title, COALESCE(e.description, ''), e.body_group_id, bg.name, COALESCE(e.image_public_id, '')
			FROM exercise e
			JOIN body_group bg ON e.body_group_id = bg.id
			WHERE e.id = $1;`,
		id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.BodyGroupID, &e.BodyGroupName, &e.ImagePublicID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ByBodyPart matches the body group name case-insensitively.
func (r *Repo) ByBodyPart(ctx context.Context, bodyPart string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.bybodypart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bodyPart", bodyPart))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT e.id, e.title, COALESCE(e.description, ''), e.body_group_id, bg.name, COALESCE(e.image_public_id, '')
			FROM exercise e
			JOIN body_group bg ON e.body_group_id = bg.id
			WHERE LOWER(bg.name) = $1
			ORDER BY e.title;`,
		strings.ToLower(bodyPart),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2exercises(rows)
}

// Search does a case-insensitive title substring match. Query hygiene
// (trimming, minimum length) is on the caller.
func (r *Repo) Search(ctx context.Context, query string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT e.id, e.title, COALESCE(e.description, ''), e.body_group_id, bg.name, COALESCE(e.image_public_id, '')
			FROM exercise e
			JOIN body_group bg ON e.body_group_id = bg.id
			WHERE e.title ILIKE '%' || $1 || '%'
			ORDER BY e.title;`,
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2exercises(rows)
}

func (r *Repo) BodyGroups(ctx context.Context) (_ []BodyGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.bodygroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(subgroup, '') FROM body_group ORDER BY name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]BodyGroup, 0)
	for rows.Next() {
		var g BodyGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Subgroup); err != nil {
			return nil, fmt.Errorf("scan body group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// BodyGroupSetsCount counts the caller's recorded sets under exercises of
// the given body group.
func (r *Repo) BodyGroupSetsCount(ctx context.Context, userID string, bodyGroupID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.bodygroupsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("bodyGroup.id", bodyGroupID))

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM body_group WHERE id = $1);`,
		bodyGroupID,
	).Scan(&exists); err != nil {
		return -1, err
	}
	if !exists {
		return -1, ErrBodyGroupNotFound
	}

	var count int
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT COUNT(s.id)
			FROM workout_set s
			JOIN workout_exercise we ON s.workout_exercise_id = we.id
			JOIN workout w ON we.workout_id = w.id
			JOIN exercise e ON we.exercise_id = e.id
			WHERE w.user_id = $1 AND e.body_group_id = $2;`,
		userID, bodyGroupID,
	).Scan(&count); err != nil {
		return -1, err
	}

	return count, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.BodyGroupID, &e.BodyGroupName, &e.ImagePublicID); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}
