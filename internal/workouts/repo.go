package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const workoutColumns = `
	w.id, w.user_id, w.exercise_id,
	w.sets, w.reps, w.weight, w.duration_min, w.distance_km, w.calories,
	w.intensity, w.notes, w.workout_date, w.created_at,
	e.id, e.name, e.category, e.muscle_group`

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	var e ExerciseInfo
	if err := row.Scan(
		&w.ID, &w.UserID, &w.ExerciseID,
		&w.Sets, &w.Reps, &w.Weight, &w.DurationMin, &w.DistanceKm, &w.Calories,
		&w.Intensity, &w.Notes, &w.WorkoutDate, &w.CreatedAt,
		&e.ID, &e.Name, &e.Category, &e.MuscleGroup,
	); err != nil {
		return nil, err
	}
	w.Exercise = &e
	return &w, nil
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.WorkoutDate.IsZero() {
		workout.WorkoutDate = time.Now()
	}
	workout.CreatedAt = time.Now()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout
			    (user_id, exercise_id, sets, reps, weight, duration_min,
			     distance_km, calories, intensity, notes, workout_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`,
		workout.UserID, workout.ExerciseID,
		workout.Sets, workout.Reps, workout.Weight, workout.DurationMin,
		workout.DistanceKm, workout.Calories, workout.Intensity,
		workout.Notes, workout.WorkoutDate, workout.CreatedAt,
	).Scan(&workout.ID)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return r.Get(ctx, workout.ID)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		if err != nil && !errors.Is(err, ErrWorkoutNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	workout, err := scanWorkout(r.db.QueryRow(
		ctx,
		`
			SELECT `+workoutColumns+`
			FROM workout w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.id = $1
		`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	if params.ExerciseID > 0 {
		span.SetAttributes(attribute.Int("exercise.id", params.ExerciseID))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+workoutColumns+`
			FROM workout w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.user_id = $1
				AND ($2::int = 0 OR w.exercise_id = $2)
				AND ($3::timestamptz IS NULL OR w.workout_date >= $3)
				AND ($4::timestamptz IS NULL OR w.workout_date <= $4)
			ORDER BY w.workout_date DESC
		`,
		params.UserID, params.ExerciseID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	var list []Workout
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		list = append(list, *workout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}

	return list, nil
}

func (r *Repo) Update(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE workout
			SET sets = $2, reps = $3, weight = $4, duration_min = $5,
			    distance_km = $6, calories = $7, intensity = $8,
			    notes = $9, workout_date = $10
			WHERE id = $1
		`,
		workout.ID,
		workout.Sets, workout.Reps, workout.Weight, workout.DurationMin,
		workout.DistanceKm, workout.Calories, workout.Intensity,
		workout.Notes, workout.WorkoutDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
