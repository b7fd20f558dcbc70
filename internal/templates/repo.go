package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("template not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const templateColumns = `
	id, user_id, name, description, category, difficulty,
	estimated_time_min, is_public, usage_count, created_at`

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.Category, &t.Difficulty,
		&t.EstimatedTimeMin, &t.IsPublic, &t.UsageCount, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns the user's own templates plus all public ones, the most
// used first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.listWhere(
		ctx,
		`WHERE user_id = $1 OR is_public`,
		userID,
	)
}

// ListOwn returns only the templates the user created.
func (r *Repo) ListOwn(ctx context.Context, userID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.listOwn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.listWhere(
		ctx,
		`WHERE user_id = $1`,
		userID,
	)
}

func (r *Repo) listWhere(ctx context.Context, where string, args ...any) ([]Template, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+templateColumns+`
			FROM workout_template
			`+where+`
			ORDER BY usage_count DESC, id ASC
		`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("templates [query]: %w", err)
	}
	defer rows.Close()

	var list []Template
	var ids []int
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("templates [rows scan]: %w", err)
		}
		list = append(list, *template)
		ids = append(ids, template.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("templates [rows error]: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	exercisesByTemplate, err := r.exercisesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Exercises = exercisesByTemplate[list[i].ID]
	}
	return list, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		if err != nil && !errors.Is(err, ErrTemplateNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	template, err := scanTemplate(r.db.QueryRow(
		ctx,
		`
			SELECT `+templateColumns+`
			FROM workout_template
			WHERE id = $1
		`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}

	exercisesByTemplate, err := r.exercisesFor(ctx, []int{template.ID})
	if err != nil {
		return nil, err
	}
	template.Exercises = exercisesByTemplate[template.ID]
	return template, nil
}

func (r *Repo) exercisesFor(ctx context.Context, templateIDs []int) (map[int][]TemplateExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    te.id, te.template_id, te.exercise_id, te.position,
			    te.sets, te.reps, te.duration_min, te.rest_time_sec, te.notes,
			    e.name
			FROM template_exercise te
			JOIN exercise e ON e.id = te.exercise_id
			WHERE te.template_id = ANY($1)
			ORDER BY te.template_id, te.position
		`,
		templateIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("template exercises [query]: %w", err)
	}
	defer rows.Close()

	byTemplate := make(map[int][]TemplateExercise)
	for rows.Next() {
		var te TemplateExercise
		var templateID int
		if err := rows.Scan(
			&te.ID, &templateID, &te.ExerciseID, &te.Position,
			&te.Sets, &te.Reps, &te.DurationMin, &te.RestTimeSec, &te.Notes,
			&te.ExerciseName,
		); err != nil {
			return nil, fmt.Errorf("template exercises [rows scan]: %w", err)
		}
		byTemplate[templateID] = append(byTemplate[templateID], te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("template exercises [rows error]: %w", err)
	}
	return byTemplate, nil
}

// Add inserts the template and its exercise entries in one transaction.
func (r *Repo) Add(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	template.CreatedAt = time.Now()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("add template tx rollback: %s", rollbackErr)
			}
		}
	}()

	err = tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_template
			    (user_id, name, description, category, difficulty,
			     estimated_time_min, is_public, usage_count, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8)
			RETURNING id
		`,
		template.UserID, template.Name, template.Description, template.Category,
		template.Difficulty, template.EstimatedTimeMin, template.IsPublic, template.CreatedAt,
	).Scan(&template.ID)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}

	if err = insertExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("template.id", template.ID))
	return r.Get(ctx, template.ID)
}

// Update rewrites the template row and replaces its exercise entries
// with the given set, in one transaction.
func (r *Repo) Update(ctx context.Context, template Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", template.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("update template tx rollback: %s", rollbackErr)
			}
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`
			UPDATE workout_template
			SET name = $2, description = $3, category = $4, difficulty = $5,
			    estimated_time_min = $6, is_public = $7
			WHERE id = $1
		`,
		template.ID, template.Name, template.Description, template.Category,
		template.Difficulty, template.EstimatedTimeMin, template.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM template_exercise WHERE template_id = $1`,
		template.ID,
	); err != nil {
		return fmt.Errorf("clear template exercises: %w", err)
	}

	if err = insertExercises(ctx, tx, template.ID, template.Exercises); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func insertExercises(ctx context.Context, tx pgx.Tx, templateID int, exercises []TemplateExercise) error {
	for i, te := range exercises {
		if _, err := tx.Exec(
			ctx,
			`
				INSERT INTO template_exercise
				    (template_id, exercise_id, position, sets, reps,
				     duration_min, rest_time_sec, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`,
			templateID, te.ExerciseID, i,
			te.Sets, te.Reps, te.DurationMin, te.RestTimeSec, te.Notes,
		); err != nil {
			return fmt.Errorf("insert template exercise [%d]: %w", te.ExerciseID, err)
		}
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	// template_exercise rows go with the template via ON DELETE CASCADE
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_template WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *Repo) IncrementUsage(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.incrementUsage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_template SET usage_count = usage_count + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
