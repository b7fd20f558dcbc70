package gamification

import (
	"context"
	"errors"
	"fmt"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// store code serves pool-backed reads and the transactional pipeline.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// InTx runs fn within a single database transaction. The Store handed
// to fn operates on that transaction only.
func (r *Repo) InTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(ctx, &dbStore{q: tx}); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			log.Errorf("gamification tx rollback: %s", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// IsConcurrencyConflict reports whether the error is a lost database
// race (serialization failure or deadlock) that is safe to retry.
func (r *Repo) IsConcurrencyConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func (r *Repo) GetProgress(ctx context.Context, userID int) (*UserProgress, error) {
	return (&dbStore{q: r.db}).getProgress(ctx, userID, false)
}

func (r *Repo) CountWorkouts(ctx context.Context, userID int) (int, error) {
	return (&dbStore{q: r.db}).CountWorkouts(ctx, userID)
}

func (r *Repo) ListAchievements(ctx context.Context) ([]Achievement, error) {
	return (&dbStore{q: r.db}).ListAchievements(ctx)
}

// EnsureAchievements inserts the given achievements unless entries with
// the same name already exist. Used to seed the default catalog.
func (r *Repo) EnsureAchievements(ctx context.Context, achievements []Achievement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.ensureAchievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, a := range achievements {
		_, err := r.db.Exec(
			ctx,
			`INSERT INTO achievement (name, description, category, requirement, xp_reward, rarity)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO NOTHING;`,
			a.Name, a.Description, a.Category, a.Requirement.Encode(), a.XPReward, a.Rarity,
		)
		if err != nil {
			return fmt.Errorf("ensure achievement %q: %w", a.Name, err)
		}
	}
	return nil
}

func (r *Repo) UnlockedAchievements(ctx context.Context, userID int) (_ []AchievementUnlock, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.unlockedAchievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, achievement_id, unlocked_at
			FROM user_achievement
			WHERE user_id = $1
			ORDER BY unlocked_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []AchievementUnlock
	for rows.Next() {
		var u AchievementUnlock
		if err := rows.Scan(&u.UserID, &u.AchievementID, &u.UnlockedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}

func (r *Repo) ListRecords(ctx context.Context, userID int, exerciseID *int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.listRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	exID := 0
	if exerciseID != nil {
		exID = *exerciseID
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, exercise_id, kind, value, unit, achieved_at
			FROM personal_record
			WHERE user_id = $1 AND ($2::int = 0 OR exercise_id = $2)
			ORDER BY exercise_id, kind;`,
		userID, exID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []PersonalRecord{}
	for rows.Next() {
		var rec PersonalRecord
		if err := rows.Scan(&rec.UserID, &rec.ExerciseID, &rec.Kind, &rec.Value, &rec.Unit, &rec.AchievedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Leaderboard returns the top users by all-time total points. Ties are
// broken by user id so repeated calls keep a stable order.
func (r *Repo) Leaderboard(ctx context.Context, limit int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				u.id, u.username, p.total_points, p.level, p.current_streak,
				(SELECT COUNT(*) FROM workout w WHERE w.user_id = u.id) AS total_workouts,
				(SELECT COUNT(*) FROM user_achievement ua WHERE ua.user_id = u.id) AS total_achievements
			FROM user_progress p
			JOIN users u ON u.id = p.user_id
			ORDER BY p.total_points DESC, u.id ASC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(
			&e.UserID, &e.Username, &e.TotalPoints, &e.Level,
			&e.CurrentStreak, &e.TotalWorkouts, &e.TotalAchievements,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbStore implements Store over either the pool or a transaction.
type dbStore struct {
	q querier
}

func (s *dbStore) GetProgressForUpdate(ctx context.Context, userID int) (*UserProgress, error) {
	return s.getProgress(ctx, userID, true)
}

func (s *dbStore) getProgress(ctx context.Context, userID int, forUpdate bool) (_ *UserProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.getProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	query := `SELECT user_id, xp, level, total_points, current_streak, longest_streak, last_workout_at
		FROM user_progress
		WHERE user_id = $1`
	if forUpdate {
		// locks the row, serializing concurrent pipelines for this user
		query += " FOR UPDATE"
	}

	var p UserProgress
	err = s.q.QueryRow(ctx, query+";", userID).Scan(
		&p.UserID, &p.XP, &p.Level, &p.TotalPoints,
		&p.CurrentStreak, &p.LongestStreak, &p.LastWorkoutAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *dbStore) SaveProgress(ctx context.Context, progress *UserProgress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.saveProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", progress.UserID))

	tag, err := s.q.Exec(
		ctx,
		`UPDATE user_progress
			SET xp = $2, level = $3, total_points = $4,
				current_streak = $5, longest_streak = $6, last_workout_at = $7
			WHERE user_id = $1;`,
		progress.UserID, progress.XP, progress.Level, progress.TotalPoints,
		progress.CurrentStreak, progress.LongestStreak, progress.LastWorkoutAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *dbStore) CountWorkouts(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.countWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := s.q.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *dbStore) GetRecord(ctx context.Context, userID, exerciseID int, kind RecordKind) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.getRecord")
	defer func() {
		if err != nil && !errors.Is(err, ErrRecordNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()

	var rec PersonalRecord
	err = s.q.QueryRow(
		ctx,
		`SELECT user_id, exercise_id, kind, value, unit, achieved_at
			FROM personal_record
			WHERE user_id = $1 AND exercise_id = $2 AND kind = $3;`,
		userID, exerciseID, kind,
	).Scan(&rec.UserID, &rec.ExerciseID, &rec.Kind, &rec.Value, &rec.Unit, &rec.AchievedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *dbStore) UpsertRecord(ctx context.Context, record PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.upsertRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", record.UserID),
		attribute.String("record.kind", string(record.Kind)),
	)

	_, err = s.q.Exec(
		ctx,
		`INSERT INTO personal_record (user_id, exercise_id, kind, value, unit, achieved_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, exercise_id, kind) DO UPDATE
			SET value = EXCLUDED.value, unit = EXCLUDED.unit, achieved_at = EXCLUDED.achieved_at;`,
		record.UserID, record.ExerciseID, record.Kind, record.Value, record.Unit, record.AchievedAt,
	)
	return err
}

func (s *dbStore) ListAchievements(ctx context.Context) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.listAchievements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.q.Query(
		ctx,
		`SELECT id, name, description, category, requirement, xp_reward, rarity
			FROM achievement
			ORDER BY category ASC, xp_reward ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []Achievement
	for rows.Next() {
		var (
			a              Achievement
			rawRequirement []byte
		)
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.Category,
			&rawRequirement, &a.XPReward, &a.Rarity,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		a.Requirement = DecodeRequirement(a.Category, rawRequirement)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (s *dbStore) UnlockedIDs(ctx context.Context, userID int) (_ map[int]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.unlockedIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.q.Query(
		ctx,
		`SELECT achievement_id FROM user_achievement WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked[id] = true
	}
	return unlocked, rows.Err()
}

func (s *dbStore) InsertUnlock(ctx context.Context, unlock AchievementUnlock) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gamification.insertUnlock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", unlock.UserID),
		attribute.Int("achievement.id", unlock.AchievementID),
	)

	tag, err := s.q.Exec(
		ctx,
		`INSERT INTO user_achievement (user_id, achievement_id, unlocked_at)
			VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING;`,
		unlock.UserID, unlock.AchievementID, unlock.UnlockedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
