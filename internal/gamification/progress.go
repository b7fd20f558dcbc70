package gamification

import (
	"time"

	"github.com/HARSHA8881/FitTrack/internal/gamification/level"
)

const streakBonusPerDay = 5

// UserProgress is the per-user gamification aggregate. It is loaded
// and locked at the start of the per-workout pipeline, mutated through
// its methods only, and persisted once at the end.
type UserProgress struct {
	UserID        int        `json:"userId"`
	XP            int        `json:"xp"`
	Level         int        `json:"level"`
	TotalPoints   int        `json:"totalPoints"`
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastWorkoutAt *time.Time `json:"lastWorkoutAt,omitempty"`
}

func NewUserProgress(userID int) *UserProgress {
	return &UserProgress{
		UserID: userID,
		Level:  1,
	}
}

type AwardResult struct {
	Amount    int  `json:"amount"`
	TotalXP   int  `json:"totalXp"`
	Level     int  `json:"level"`
	LeveledUp bool `json:"leveledUp"`
}

// AwardXP adds the given amount to both the XP and the total points
// counters and recomputes the level. Level is never set directly.
func (p *UserProgress) AwardXP(amount int) AwardResult {
	oldLevel := p.Level
	p.XP += amount
	p.TotalPoints += amount
	p.Level = level.LevelFromXP(p.XP)
	return AwardResult{
		Amount:    amount,
		TotalXP:   p.XP,
		Level:     p.Level,
		LeveledUp: p.Level > oldLevel,
	}
}

type StreakUpdate struct {
	Continued bool `json:"continued"`
	Length    int  `json:"length"`
	BonusXP   int  `json:"bonusXp"`
}

// AdvanceStreak applies the streak state machine for a workout logged
// at the given time. Day comparison is done on calendar days in the
// workout timestamp's location:
//   - same day as the last workout: streak unchanged, no bonus
//   - exactly the next day: streak extended, bonus XP earned
//   - a gap of two or more days, or no prior workout: streak restarts at 1
//
// The bonus XP is NOT awarded here, only computed; the caller awards it
// through AwardXP so that the whole pipeline persists the aggregate once.
func (p *UserProgress) AdvanceStreak(workoutAt time.Time) StreakUpdate {
	update := StreakUpdate{}

	switch {
	case p.LastWorkoutAt == nil:
		p.CurrentStreak = 1
	default:
		daysDiff := calendarDaysBetween(*p.LastWorkoutAt, workoutAt)
		switch {
		case daysDiff == 0:
			// another workout on the same day, streak unchanged
		case daysDiff == 1:
			p.CurrentStreak++
			update.Continued = true
			update.BonusXP = streakBonusPerDay * p.CurrentStreak
		default:
			p.CurrentStreak = 1
		}
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	t := workoutAt
	p.LastWorkoutAt = &t

	update.Length = p.CurrentStreak
	return update
}

// calendarDaysBetween counts calendar days in the location of the later
// timestamp. The dates are re-anchored in UTC before subtracting so that
// a DST-shortened 23-hour day still counts as a full day.
func calendarDaysBetween(from, to time.Time) int {
	from = from.In(to.Location())
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
