package gamification

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/HARSHA8881/FitTrack/internal/gamification/level"
	"github.com/HARSHA8881/FitTrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRecordNotFound = errors.New("personal record not found")
)

// maxTxAttempts bounds the internal retries of the per-workout pipeline
// when it loses a concurrency race.
const maxTxAttempts = 3

// xpTemplateUse is the flat XP award for completing a stored workout template.
const xpTemplateUse = 25

// Store is the transactional view of the gamification state. Within
// InTx all calls run on the same transaction, and GetProgressForUpdate
// locks the user's progress row, serializing concurrent pipelines for
// the same user.
type Store interface {
	GetProgressForUpdate(ctx context.Context, userID int) (*UserProgress, error)
	SaveProgress(ctx context.Context, progress *UserProgress) error
	CountWorkouts(ctx context.Context, userID int) (int, error)
	GetRecord(ctx context.Context, userID, exerciseID int, kind RecordKind) (*PersonalRecord, error)
	UpsertRecord(ctx context.Context, record PersonalRecord) error
	ListAchievements(ctx context.Context) ([]Achievement, error)
	UnlockedIDs(ctx context.Context, userID int) (map[int]bool, error)
	InsertUnlock(ctx context.Context, unlock AchievementUnlock) (inserted bool, err error)
}

type gamificationRepo interface {
	InTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
	GetProgress(ctx context.Context, userID int) (*UserProgress, error)
	CountWorkouts(ctx context.Context, userID int) (int, error)
	ListAchievements(ctx context.Context) ([]Achievement, error)
	EnsureAchievements(ctx context.Context, achievements []Achievement) error
	UnlockedAchievements(ctx context.Context, userID int) ([]AchievementUnlock, error)
	ListRecords(ctx context.Context, userID int, exerciseID *int) ([]PersonalRecord, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	IsConcurrencyConflict(err error) bool
}

type WorkoutLoggedResult struct {
	XPAwarded       int              `json:"xpAwarded"`
	TotalXP         int              `json:"totalXp"`
	NewLevel        int              `json:"newLevel"`
	LeveledUp       bool             `json:"leveledUp"`
	NewStreak       int              `json:"newStreak"`
	StreakContinued bool             `json:"streakContinued"`
	StreakBonusXP   int              `json:"streakBonusXp"`
	NewRecords      []PersonalRecord `json:"newRecords"`
	NewAchievements []Achievement    `json:"newAchievements"`
}

type Stats struct {
	TotalWorkouts        int        `json:"totalWorkouts"`
	XP                   int        `json:"xp"`
	Level                int        `json:"level"`
	TotalPoints          int        `json:"totalPoints"`
	CurrentStreak        int        `json:"currentStreak"`
	LongestStreak        int        `json:"longestStreak"`
	XPIntoCurrentLevel   int        `json:"xpIntoCurrentLevel"`
	XPNeededForNextLevel int        `json:"xpNeededForNextLevel"`
	UnlockedAchievements int        `json:"unlockedAchievements"`
	LastWorkoutAt        *time.Time `json:"lastWorkoutAt,omitempty"`
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            int    `json:"userId"`
	Username          string `json:"username"`
	TotalPoints       int    `json:"totalPoints"`
	Level             int    `json:"level"`
	CurrentStreak     int    `json:"currentStreak"`
	TotalWorkouts     int    `json:"totalWorkouts"`
	TotalAchievements int    `json:"totalAchievements"`
}

type AchievementStatus struct {
	Achievement
	Requirement []byte     `json:"requirement"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

type AchievementsOverview struct {
	Achievements      []AchievementStatus `json:"achievements"`
	TotalAchievements int                 `json:"totalAchievements"`
	UnlockedCount     int                 `json:"unlockedCount"`
	Progress          float64             `json:"progress"`
}

type Service struct {
	repo gamificationRepo
	now  func() time.Time
}

func NewService(repo gamificationRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// EnsureCatalog makes sure the default achievement catalog exists in storage.
func (s *Service) EnsureCatalog(ctx context.Context) error {
	return s.repo.EnsureAchievements(ctx, DefaultAchievements)
}

// OnWorkoutLogged runs the whole per-workout pipeline: personal record
// check, streak update, XP award and achievement evaluation - all within
// one transaction. A lost concurrency race is retried internally, the
// caller never sees a conflict error.
func (s *Service) OnWorkoutLogged(ctx context.Context, userID int, workout Workout) (_ *WorkoutLoggedResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.onWorkoutLogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var result *WorkoutLoggedResult
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		result, err = s.runWorkoutPipeline(ctx, userID, workout)
		if err == nil || !s.repo.IsConcurrencyConflict(err) {
			return result, err
		}
		log.Warnf("workout pipeline for user %d lost a race (attempt %d/%d), retrying", userID, attempt, maxTxAttempts)
	}

	return nil, fmt.Errorf("workout pipeline retries exhausted: %w", err)
}

func (s *Service) runWorkoutPipeline(ctx context.Context, userID int, workout Workout) (*WorkoutLoggedResult, error) {
	result := &WorkoutLoggedResult{
		NewRecords:      []PersonalRecord{},
		NewAchievements: []Achievement{},
	}

	err := s.repo.InTx(ctx, func(ctx context.Context, store Store) error {
		progress, err := store.GetProgressForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}
		levelBefore := progress.Level

		newRecords, err := s.checkPersonalRecords(ctx, store, workout)
		if err != nil {
			return fmt.Errorf("check personal records: %w", err)
		}

		streak := progress.AdvanceStreak(workout.WorkoutDate)

		workoutXP := level.WorkoutXP(workout.Intensity, workout.durationMinutes(), len(newRecords) > 0)
		progress.AwardXP(workoutXP)
		if streak.BonusXP > 0 {
			progress.AwardXP(streak.BonusXP)
		}

		newAchievements, err := s.evaluateAchievements(ctx, store, progress)
		if err != nil {
			return fmt.Errorf("evaluate achievements: %w", err)
		}

		if err := store.SaveProgress(ctx, progress); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		result.XPAwarded = workoutXP
		result.TotalXP = progress.XP
		result.NewLevel = progress.Level
		result.LeveledUp = progress.Level > levelBefore
		result.NewStreak = streak.Length
		result.StreakContinued = streak.Continued
		result.StreakBonusXP = streak.BonusXP
		result.NewRecords = newRecords
		result.NewAchievements = newAchievements
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// OnTemplateUsed awards the flat template-completion XP on the locked
// progress row, with the same internal retry as the workout pipeline.
// The per-exercise workouts created from the template run through
// OnWorkoutLogged separately when the user logs them for real; this is
// the bonus for following a stored plan.
func (s *Service) OnTemplateUsed(ctx context.Context, userID int) (_ *AwardResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.onTemplateUsed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var result *AwardResult
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		result, err = s.awardTemplateXP(ctx, userID)
		if err == nil || !s.repo.IsConcurrencyConflict(err) {
			return result, err
		}
		log.Warnf("template award for user %d lost a race (attempt %d/%d), retrying", userID, attempt, maxTxAttempts)
	}

	return nil, fmt.Errorf("template award retries exhausted: %w", err)
}

func (s *Service) awardTemplateXP(ctx context.Context, userID int) (*AwardResult, error) {
	var result AwardResult
	err := s.repo.InTx(ctx, func(ctx context.Context, store Store) error {
		progress, err := store.GetProgressForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}
		result = progress.AwardXP(xpTemplateUse)
		if err := store.SaveProgress(ctx, progress); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) checkPersonalRecords(ctx context.Context, store Store, workout Workout) ([]PersonalRecord, error) {
	newRecords := []PersonalRecord{}
	for _, candidate := range CandidateRecords(workout) {
		existing, err := store.GetRecord(ctx, candidate.UserID, candidate.ExerciseID, candidate.Kind)
		switch {
		case errors.Is(err, ErrRecordNotFound):
			// first record of this kind, counts as a PR
		case err != nil:
			return nil, err
		case !candidate.Kind.Improves(candidate.Value, existing.Value):
			continue
		}

		candidate.AchievedAt = s.now()
		if err := store.UpsertRecord(ctx, candidate); err != nil {
			return nil, err
		}
		newRecords = append(newRecords, candidate)
	}
	return newRecords, nil
}

// evaluateAchievements runs the rule engine as a fixed-point loop:
// achievement XP rewards mutate the aggregate state, which can satisfy
// further milestone rules within the same event. The loop terminates
// because the catalog is finite and every achievement unlocks at most once.
func (s *Service) evaluateAchievements(ctx context.Context, store Store, progress *UserProgress) ([]Achievement, error) {
	totalWorkouts, err := store.CountWorkouts(ctx, progress.UserID)
	if err != nil {
		return nil, err
	}
	catalog, err := store.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := store.UnlockedIDs(ctx, progress.UserID)
	if err != nil {
		return nil, err
	}

	newAchievements := []Achievement{}
	for {
		anyUnlocked := false
		state := AggregateState{
			TotalWorkouts: totalWorkouts,
			CurrentStreak: progress.CurrentStreak,
			LongestStreak: progress.LongestStreak,
			Level:         progress.Level,
			XP:            progress.XP,
		}

		for _, achievement := range catalog {
			if unlocked[achievement.ID] {
				continue
			}
			if !achievement.Requirement.SatisfiedBy(state) {
				continue
			}

			inserted, err := store.InsertUnlock(ctx, AchievementUnlock{
				UserID:        progress.UserID,
				AchievementID: achievement.ID,
				UnlockedAt:    s.now(),
			})
			if err != nil {
				return nil, err
			}
			unlocked[achievement.ID] = true
			if !inserted {
				// already unlocked, never reward twice
				continue
			}

			progress.AwardXP(achievement.XPReward)
			newAchievements = append(newAchievements, achievement)
			anyUnlocked = true
		}

		if !anyUnlocked {
			break
		}
	}

	return newAchievements, nil
}

func (s *Service) Stats(ctx context.Context, userID int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	progress, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	totalWorkouts, err := s.repo.CountWorkouts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}
	unlocks, err := s.repo.UnlockedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get unlocked achievements: %w", err)
	}

	return &Stats{
		TotalWorkouts:        totalWorkouts,
		XP:                   progress.XP,
		Level:                progress.Level,
		TotalPoints:          progress.TotalPoints,
		CurrentStreak:        progress.CurrentStreak,
		LongestStreak:        progress.LongestStreak,
		XPIntoCurrentLevel:   level.XPIntoLevel(progress.XP),
		XPNeededForNextLevel: level.XPForNextLevel(progress.XP),
		UnlockedAchievements: len(unlocks),
		LastWorkoutAt:        progress.LastWorkoutAt,
	}, nil
}

func (s *Service) AchievementsOverview(ctx context.Context, userID int) (_ *AchievementsOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.achievementsOverview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	catalog, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	unlocks, err := s.repo.UnlockedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get unlocked achievements: %w", err)
	}

	unlockedAt := make(map[int]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	overview := &AchievementsOverview{
		Achievements:      make([]AchievementStatus, 0, len(catalog)),
		TotalAchievements: len(catalog),
		UnlockedCount:     len(unlocks),
	}
	for _, achievement := range catalog {
		status := AchievementStatus{
			Achievement: achievement,
			Requirement: achievement.Requirement.Encode(),
		}
		if at, ok := unlockedAt[achievement.ID]; ok {
			status.Unlocked = true
			at := at
			status.UnlockedAt = &at
		}
		overview.Achievements = append(overview.Achievements, status)
	}

	if len(catalog) > 0 {
		overview.Progress = roundToOneDecimal(float64(len(unlocks)) / float64(len(catalog)) * 100)
	}

	return overview, nil
}

// Leaderboard ranks users by their all-time total points. The timeframe
// parameter is accepted for API compatibility but does not window the
// ranking - all values rank by all-time points.
func (s *Service) Leaderboard(ctx context.Context, timeframe string, limit int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("timeframe", timeframe),
		attribute.Int("limit", limit),
	)

	entries, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *Service) PersonalRecords(ctx context.Context, userID int, exerciseID *int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gamification.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	records, err := s.repo.ListRecords(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
