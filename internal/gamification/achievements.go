package gamification

import (
	"encoding/json"
	"time"
)

type RequirementKind string

const (
	ReqTotalWorkouts   RequirementKind = "total_workouts"
	ReqConsecutiveDays RequirementKind = "consecutive_days"
	ReqLongestStreak   RequirementKind = "longest_streak"
	ReqReachLevel      RequirementKind = "reach_level"
	ReqTotalXP         RequirementKind = "total_xp"
	ReqUnknown         RequirementKind = "unknown"
)

// Requirement is the decoded form of an achievement rule. Rules are
// stored as JSON in the catalog and decoded exactly once at load time.
type Requirement struct {
	Kind      RequirementKind
	Threshold int
}

// rawRequirement is the persisted JSON shape. Only one of the threshold
// fields is set, depending on the type.
type rawRequirement struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
	Days  int    `json:"days,omitempty"`
	Level int    `json:"level,omitempty"`
	XP    int    `json:"xp,omitempty"`
}

// DecodeRequirement parses a raw requirement rule, honoring the category
// it is declared under. An unrecognized category/type combination yields
// an inert rule that never unlocks, not an error.
func DecodeRequirement(category string, raw []byte) Requirement {
	var r rawRequirement
	if err := json.Unmarshal(raw, &r); err != nil {
		return Requirement{Kind: ReqUnknown}
	}

	switch category {
	case "workout":
		if r.Type == string(ReqTotalWorkouts) {
			return Requirement{Kind: ReqTotalWorkouts, Threshold: r.Count}
		}
	case "streak":
		if r.Type == string(ReqConsecutiveDays) {
			return Requirement{Kind: ReqConsecutiveDays, Threshold: r.Days}
		}
		if r.Type == string(ReqLongestStreak) {
			return Requirement{Kind: ReqLongestStreak, Threshold: r.Days}
		}
	case "milestone":
		if r.Type == string(ReqReachLevel) {
			return Requirement{Kind: ReqReachLevel, Threshold: r.Level}
		}
		if r.Type == string(ReqTotalXP) {
			return Requirement{Kind: ReqTotalXP, Threshold: r.XP}
		}
	}

	return Requirement{Kind: ReqUnknown}
}

// Encode renders the requirement back into its persisted JSON shape.
func (r Requirement) Encode() []byte {
	raw := rawRequirement{}
	switch r.Kind {
	case ReqTotalWorkouts:
		raw.Type, raw.Count = string(r.Kind), r.Threshold
	case ReqConsecutiveDays, ReqLongestStreak:
		raw.Type, raw.Days = string(r.Kind), r.Threshold
	case ReqReachLevel:
		raw.Type, raw.Level = string(r.Kind), r.Threshold
	case ReqTotalXP:
		raw.Type, raw.XP = string(r.Kind), r.Threshold
	default:
		raw.Type = string(ReqUnknown)
	}
	encoded, _ := json.Marshal(raw)
	return encoded
}

// AggregateState is the snapshot of user state achievement rules are
// evaluated against.
type AggregateState struct {
	TotalWorkouts int
	CurrentStreak int
	LongestStreak int
	Level         int
	XP            int
}

// SatisfiedBy reports whether the aggregate state meets the requirement.
// Unknown rules are inert and never satisfied.
func (r Requirement) SatisfiedBy(state AggregateState) bool {
	switch r.Kind {
	case ReqTotalWorkouts:
		return state.TotalWorkouts >= r.Threshold
	case ReqConsecutiveDays:
		return state.CurrentStreak >= r.Threshold
	case ReqLongestStreak:
		return state.LongestStreak >= r.Threshold
	case ReqReachLevel:
		return state.Level >= r.Threshold
	case ReqTotalXP:
		return state.XP >= r.Threshold
	default:
		return false
	}
}

type Achievement struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Requirement Requirement `json:"-"`
	XPReward    int         `json:"xpReward"`
	Rarity      string      `json:"rarity"`
}

// AchievementUnlock is one row of the (user, achievement) unlock set,
// created exactly once per pair.
type AchievementUnlock struct {
	UserID        int       `json:"userId"`
	AchievementID int       `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}
