package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalStatuses are the lifecycle states of a goal.
var GoalStatuses = []string{"active", "completed", "abandoned"}

// Goal is a self-set fitness target, tracked manually by the user.
type Goal struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	GoalType     string     `json:"goalType"`
	TargetValue  *float64   `json:"targetValue,omitempty"`
	CurrentValue float64    `json:"currentValue"`
	Unit         *string    `json:"unit,omitempty"`
	Status       string     `json:"status"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

const goalColumns = `
	id, user_id, title, description, goal_type, target_value,
	current_value, unit, status, target_date, completed_at, created_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	if err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.GoalType, &g.TargetValue,
		&g.CurrentValue, &g.Unit, &g.Status, &g.TargetDate, &g.CompletedAt, &g.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGoals returns the user's goals, active ones first, newest within
// the same status. An empty status lists all of them.
func (r *Repo) ListGoals(ctx context.Context, userID int, status string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+goalColumns+`
			FROM goal
			WHERE user_id = $1
				AND ($2 = '' OR status = $2)
			ORDER BY status ASC, created_at DESC
		`,
		userID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("goals [query]: %w", err)
	}
	defer rows.Close()

	var list []Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("goals [rows scan]: %w", err)
		}
		list = append(list, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goals [rows error]: %w", err)
	}
	return list, nil
}

func (r *Repo) GetGoal(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getGoal")
	defer func() {
		if err != nil && !errors.Is(err, ErrGoalNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	goal, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goal WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal.CreatedAt = time.Now()
	if goal.Status == "" {
		goal.Status = "active"
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO goal
			    (user_id, title, description, goal_type, target_value,
			     current_value, unit, status, target_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
		goal.UserID, goal.Title, goal.Description, goal.GoalType, goal.TargetValue,
		goal.CurrentValue, goal.Unit, goal.Status, goal.TargetDate, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))
	return &goal, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, goal Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goal.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE goal
			SET title = $2, description = $3, goal_type = $4, target_value = $5,
			    current_value = $6, unit = $7, status = $8, target_date = $9,
			    completed_at = $10
			WHERE id = $1
		`,
		goal.ID,
		goal.Title, goal.Description, goal.GoalType, goal.TargetValue,
		goal.CurrentValue, goal.Unit, goal.Status, goal.TargetDate,
		goal.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) DeleteGoal(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.deleteGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
