package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the default catalog plus the exercises created by the given user.
func (r *Repo) List(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, category, muscle_group, user_id, is_default, created_at
			FROM exercise
			WHERE is_default OR user_id = $1
			ORDER BY name ASC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var list []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.UserID, &e.IsDefault, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return list, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		if err != nil && !errors.Is(err, ErrExerciseNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, category, muscle_group, user_id, is_default, created_at
			FROM exercise
			WHERE id = $1
		`,
		id,
	).Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.UserID, &e.IsDefault, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Add inserts a custom, non-default exercise for a user.
func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}
	exercise.IsDefault = false

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise
			    (name, category, muscle_group, user_id, is_default, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
		exercise.Name,
		exercise.Category,
		exercise.MuscleGroup,
		exercise.UserID,
		exercise.IsDefault,
		exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// EnsureDefaults seeds the default exercise catalog, skipping the names
// already present. Safe to run on every startup.
func (r *Repo) EnsureDefaults(ctx context.Context, defaults []Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.ensureDefaults")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, e := range defaults {
		_, err = r.db.Exec(
			ctx,
			`
				INSERT INTO exercise
				    (name, category, muscle_group, is_default, created_at)
				VALUES ($1, $2, $3, TRUE, $4)
				ON CONFLICT DO NOTHING
			`,
			e.Name, e.Category, e.MuscleGroup, time.Now(),
		)
		if err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", e.Name, err)
		}
	}

	return nil
}
