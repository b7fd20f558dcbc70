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

var ErrBodyMetricNotFound = errors.New("body metric not found")

// BodyMetric is a single body measurement log entry, for example a
// weight or body-fat reading.
type BodyMetric struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	MetricType string    `json:"metricType"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Notes      *string   `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// BodyMetricsParams filters a body metric listing; zero values mean no filter.
type BodyMetricsParams struct {
	MetricType string
	From       *time.Time
	To         *time.Time
	Limit      int
}

const bodyMetricColumns = `
	id, user_id, metric_type, value, unit, notes, recorded_at`

func scanBodyMetric(row pgx.Row) (*BodyMetric, error) {
	var m BodyMetric
	if err := row.Scan(
		&m.ID, &m.UserID, &m.MetricType, &m.Value, &m.Unit, &m.Notes, &m.RecordedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListBodyMetrics returns the user's measurements, newest first.
func (r *Repo) ListBodyMetrics(ctx context.Context, userID int, params BodyMetricsParams) (_ []BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listBodyMetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+bodyMetricColumns+`
			FROM body_metric
			WHERE user_id = $1
				AND ($2 = '' OR metric_type = $2)
				AND ($3::timestamptz IS NULL OR recorded_at >= $3)
				AND ($4::timestamptz IS NULL OR recorded_at <= $4)
			ORDER BY recorded_at DESC
			LIMIT CASE WHEN $5 > 0 THEN $5 END
		`,
		userID, params.MetricType, params.From, params.To, params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("body metrics [query]: %w", err)
	}
	defer rows.Close()

	var list []BodyMetric
	for rows.Next() {
		metric, err := scanBodyMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("body metrics [rows scan]: %w", err)
		}
		list = append(list, *metric)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("body metrics [rows error]: %w", err)
	}
	return list, nil
}

func (r *Repo) GetBodyMetric(ctx context.Context, id int) (_ *BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getBodyMetric")
	defer func() {
		if err != nil && !errors.Is(err, ErrBodyMetricNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("metric.id", id))

	metric, err := scanBodyMetric(r.db.QueryRow(
		ctx,
		`SELECT `+bodyMetricColumns+` FROM body_metric WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBodyMetricNotFound
	}
	if err != nil {
		return nil, err
	}
	return metric, nil
}

func (r *Repo) AddBodyMetric(ctx context.Context, metric BodyMetric) (_ *BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addBodyMetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if metric.RecordedAt.IsZero() {
		metric.RecordedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO body_metric
			    (user_id, metric_type, value, unit, notes, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
		metric.UserID, metric.MetricType, metric.Value, metric.Unit,
		metric.Notes, metric.RecordedAt,
	).Scan(&metric.ID)
	if err != nil {
		return nil, fmt.Errorf("insert body metric: %w", err)
	}

	span.SetAttributes(attribute.Int("metric.id", metric.ID))
	return &metric, nil
}

func (r *Repo) UpdateBodyMetric(ctx context.Context, metric BodyMetric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateBodyMetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("metric.id", metric.ID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE body_metric
			SET metric_type = $2, value = $3, unit = $4, notes = $5, recorded_at = $6
			WHERE id = $1
		`,
		metric.ID,
		metric.MetricType, metric.Value, metric.Unit, metric.Notes, metric.RecordedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyMetricNotFound
	}
	return nil
}

func (r *Repo) DeleteBodyMetric(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.deleteBodyMetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("metric.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_metric WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyMetricNotFound
	}
	return nil
}
