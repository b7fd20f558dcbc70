package gamification

import "time"

type RecordKind string

const (
	RecordMaxWeight   RecordKind = "max_weight"
	RecordMaxReps     RecordKind = "max_reps"
	RecordMaxDistance RecordKind = "max_distance"
	RecordFastestTime RecordKind = "fastest_time"
)

// Unit returns the unit the record value is expressed in.
func (k RecordKind) Unit() string {
	switch k {
	case RecordMaxWeight:
		return "kg"
	case RecordMaxReps:
		return "reps"
	case RecordMaxDistance:
		return "km"
	case RecordFastestTime:
		return "minutes"
	default:
		return ""
	}
}

// Improves reports whether newValue beats oldValue for this record kind.
// Fastest time improves downwards, everything else upwards.
func (k RecordKind) Improves(newValue, oldValue float64) bool {
	if k == RecordFastestTime {
		return newValue < oldValue
	}
	return newValue > oldValue
}

// PersonalRecord is the best-ever value for a (user, exercise, kind)
// combination. A better value replaces the row in place, history is not kept.
type PersonalRecord struct {
	UserID     int        `json:"userId"`
	ExerciseID int        `json:"exerciseId"`
	Kind       RecordKind `json:"kind"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	AchievedAt time.Time  `json:"achievedAt"`
}

// CandidateRecords derives the record candidates a workout can set.
// Fastest time needs both a duration and a distance, the other kinds
// just need their metric present.
func CandidateRecords(w Workout) []PersonalRecord {
	var candidates []PersonalRecord

	add := func(kind RecordKind, value float64) {
		candidates = append(candidates, PersonalRecord{
			UserID:     w.UserID,
			ExerciseID: w.ExerciseID,
			Kind:       kind,
			Value:      value,
			Unit:       kind.Unit(),
			AchievedAt: w.WorkoutDate,
		})
	}

	if w.Weight != nil {
		add(RecordMaxWeight, *w.Weight)
	}
	if w.Reps != nil {
		add(RecordMaxReps, float64(*w.Reps))
	}
	if w.DistanceKm != nil {
		add(RecordMaxDistance, *w.DistanceKm)
	}
	if w.DurationMin != nil && w.DistanceKm != nil {
		add(RecordFastestTime, float64(*w.DurationMin))
	}

	return candidates
}
