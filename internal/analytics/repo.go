package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"
	"github.com/HARSHA8881/FitTrack/internal/workouts"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// WorkoutsSince returns the user's workouts since the given moment,
// joined with their exercise, oldest first. Zero exerciseID means all
// exercises.
func (r *Repo) WorkoutsSince(
	ctx context.Context,
	userID int,
	since time.Time,
	exerciseID int,
) (_ []WorkoutRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.workoutsSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    e.name, e.category, e.muscle_group,
			    w.sets, w.reps, w.weight, w.duration_min, w.calories, w.workout_date
			FROM workout w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.user_id = $1
				AND w.workout_date >= $2
				AND ($3::int = 0 OR w.exercise_id = $3)
			ORDER BY w.workout_date ASC
		`,
		userID, since, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics workouts [query]: %w", err)
	}
	defer rows.Close()

	var result []WorkoutRow
	for rows.Next() {
		var row WorkoutRow
		if err := rows.Scan(
			&row.ExerciseName, &row.Category, &row.MuscleGroup,
			&row.Sets, &row.Reps, &row.Weight, &row.DurationMin, &row.Calories, &row.WorkoutDate,
		); err != nil {
			return nil, fmt.Errorf("analytics workouts [rows scan]: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics workouts [rows error]: %w", err)
	}

	return result, nil
}

// WorkoutsInYear returns the user's workouts within a calendar year.
func (r *Repo) WorkoutsInYear(ctx context.Context, userID, year int) (_ []WorkoutRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.workoutsInYear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("year", year),
	)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    e.name, e.category, e.muscle_group,
			    w.sets, w.reps, w.weight, w.duration_min, w.calories, w.workout_date
			FROM workout w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.user_id = $1 AND w.workout_date >= $2 AND w.workout_date < $3
			ORDER BY w.workout_date ASC
		`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics workouts in year [query]: %w", err)
	}
	defer rows.Close()

	var result []WorkoutRow
	for rows.Next() {
		var row WorkoutRow
		if err := rows.Scan(
			&row.ExerciseName, &row.Category, &row.MuscleGroup,
			&row.Sets, &row.Reps, &row.Weight, &row.DurationMin, &row.Calories, &row.WorkoutDate,
		); err != nil {
			return nil, fmt.Errorf("analytics workouts in year [rows scan]: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics workouts in year [rows error]: %w", err)
	}

	return result, nil
}

// Overview is the headline numbers block for the dashboard.
type Overview struct {
	TotalWorkouts     int                `json:"totalWorkouts"`
	WorkoutsThisWeek  int                `json:"workoutsThisWeek"`
	WorkoutsThisMonth int                `json:"workoutsThisMonth"`
	PersonalRecords   int                `json:"personalRecords"`
	CurrentStreak     int                `json:"currentStreak"`
	LongestStreak     int                `json:"longestStreak"`
	Level             int                `json:"level"`
	XP                int                `json:"xp"`
	RecentWorkouts    []workouts.Workout `json:"recentWorkouts"`
}

func (r *Repo) Overview(ctx context.Context, userID int, now time.Time) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	// week starts on sunday, month on the 1st
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	var o Overview
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    (SELECT COUNT(*) FROM workout WHERE user_id = $1),
			    (SELECT COUNT(*) FROM workout WHERE user_id = $1 AND workout_date >= $2),
			    (SELECT COUNT(*) FROM workout WHERE user_id = $1 AND workout_date >= $3),
			    (SELECT COUNT(*) FROM personal_record WHERE user_id = $1),
			    p.current_streak, p.longest_streak, p.level, p.xp
			FROM user_progress p
			WHERE p.user_id = $1
		`,
		userID, startOfWeek, startOfMonth,
	).Scan(
		&o.TotalWorkouts, &o.WorkoutsThisWeek, &o.WorkoutsThisMonth, &o.PersonalRecords,
		&o.CurrentStreak, &o.LongestStreak, &o.Level, &o.XP,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics overview [query row]: %w", err)
	}

	o.RecentWorkouts, err = r.recentWorkouts(ctx, userID, 10)
	if err != nil {
		return nil, fmt.Errorf("analytics overview [recent workouts]: %w", err)
	}

	return &o, nil
}

func (r *Repo) recentWorkouts(ctx context.Context, userID, limit int) ([]workouts.Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    w.id, w.user_id, w.exercise_id,
			    w.sets, w.reps, w.weight, w.duration_min, w.distance_km, w.calories,
			    w.intensity, w.notes, w.workout_date, w.created_at,
			    e.id, e.name, e.category, e.muscle_group
			FROM workout w
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.user_id = $1
			ORDER BY w.workout_date DESC
			LIMIT $2
		`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []workouts.Workout
	for rows.Next() {
		var w workouts.Workout
		var e workouts.ExerciseInfo
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.ExerciseID,
			&w.Sets, &w.Reps, &w.Weight, &w.DurationMin, &w.DistanceKm, &w.Calories,
			&w.Intensity, &w.Notes, &w.WorkoutDate, &w.CreatedAt,
			&e.ID, &e.Name, &e.Category, &e.MuscleGroup,
		); err != nil {
			return nil, err
		}
		w.Exercise = &e
		recent = append(recent, w)
	}
	return recent, rows.Err()
}
