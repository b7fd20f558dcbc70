package users

import (
	"context"
	"errors"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Profile is the public view of an account: the editable profile fields
// joined with the gamification progress counters.
type Profile struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Avatar          *string   `json:"avatar,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	FitnessGoal     *string   `json:"fitnessGoal,omitempty"`
	ExperienceLevel string    `json:"experienceLevel"`
	PreferredUnits  string    `json:"preferredUnits"`
	WeeklyGoal      int       `json:"weeklyGoal"`
	IsPublic        bool      `json:"isPublic"`
	Level           int       `json:"level"`
	XP              int       `json:"xp"`
	TotalPoints     int       `json:"totalPoints"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProfileUpdate carries the fields a user may change; nil means keep.
type ProfileUpdate struct {
	Avatar          *string `json:"avatar"`
	Bio             *string `json:"bio"`
	FitnessGoal     *string `json:"fitnessGoal"`
	ExperienceLevel *string `json:"experienceLevel"`
	PreferredUnits  *string `json:"preferredUnits"`
	WeeklyGoal      *int    `json:"weeklyGoal"`
	IsPublic        *bool   `json:"isPublic"`
}

var (
	ExperienceLevels = []string{"beginner", "intermediate", "advanced"}
	UnitSystems      = []string{"metric", "imperial"}
)

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getProfile")
	defer func() {
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    u.id, u.username, u.avatar, u.bio, u.fitness_goal,
			    u.experience_level, u.preferred_units, u.weekly_goal, u.is_public,
			    up.level, up.xp, up.total_points, up.current_streak, up.longest_streak,
			    u.created_at
			FROM users u
			JOIN user_progress up ON up.user_id = u.id
			WHERE u.id = $1
		`,
		userID,
	).Scan(
		&p.ID, &p.Username, &p.Avatar, &p.Bio, &p.FitnessGoal,
		&p.ExperienceLevel, &p.PreferredUnits, &p.WeeklyGoal, &p.IsPublic,
		&p.Level, &p.XP, &p.TotalPoints, &p.CurrentStreak, &p.LongestStreak,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile changes only the provided fields, COALESCE keeps the
// stored value for every nil pointer.
func (r *Repo) UpdateProfile(ctx context.Context, userID int, update ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE users
			SET avatar           = COALESCE($2, avatar),
			    bio              = COALESCE($3, bio),
			    fitness_goal     = COALESCE($4, fitness_goal),
			    experience_level = COALESCE($5, experience_level),
			    preferred_units  = COALESCE($6, preferred_units),
			    weekly_goal      = COALESCE($7, weekly_goal),
			    is_public        = COALESCE($8, is_public)
			WHERE id = $1
		`,
		userID,
		update.Avatar, update.Bio, update.FitnessGoal, update.ExperienceLevel,
		update.PreferredUnits, update.WeeklyGoal, update.IsPublic,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
