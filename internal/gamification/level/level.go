// Package level holds the pure experience/level math: XP thresholds form
// a geometric curve, and workout XP awards are computed from the workout
// properties alone. No I/O happens here.
package level

import "math"

const (
	baseXP     = 100
	multiplier = 1.5

	baseWorkoutXP = 10
	prBonusXP     = 50
)

// intensity bonuses awarded on top of the base workout XP
var intensityBonus = map[string]int{
	"low":    5,
	"medium": 10,
	"high":   20,
}

// XPForLevel returns the XP required to advance from the given level to the next one.
func XPForLevel(lvl int) int {
	return int(math.Floor(baseXP * math.Pow(multiplier, float64(lvl-1))))
}

// LevelFromXP returns the largest level whose cumulative XP threshold
// does not exceed the given XP total. Level 1 requires 0 XP, level 2
// requires 100, level 3 requires 250, and so on.
func LevelFromXP(totalXP int) int {
	lvl := 1
	threshold := 0
	for {
		threshold += XPForLevel(lvl)
		if totalXP < threshold {
			return lvl
		}
		lvl++
	}
}

// ThresholdForLevel returns the cumulative XP needed to reach the given level.
func ThresholdForLevel(lvl int) int {
	threshold := 0
	for l := 1; l < lvl; l++ {
		threshold += XPForLevel(l)
	}
	return threshold
}

// XPIntoLevel returns how much XP was collected since the current level was reached.
func XPIntoLevel(totalXP int) int {
	return totalXP - ThresholdForLevel(LevelFromXP(totalXP))
}

// XPForNextLevel returns the XP still required to reach the next level.
func XPForNextLevel(totalXP int) int {
	lvl := LevelFromXP(totalXP)
	return ThresholdForLevel(lvl+1) - totalXP
}

// WorkoutXP computes the XP award for a single logged workout:
// base award, plus intensity bonus, plus one point per 5 minutes of
// duration, plus a flat bonus if any personal record was set.
func WorkoutXP(intensity string, durationMinutes int, isPersonalRecord bool) int {
	xp := baseWorkoutXP
	xp += intensityBonus[intensity]
	xp += durationMinutes / 5
	if isPersonalRecord {
		xp += prBonusXP
	}
	return xp
}
