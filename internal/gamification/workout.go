package gamification

import "time"

// Workout is the engine's view of a logged workout. The workout itself
// is an immutable fact owned by the workouts package; the engine only
// reads the fields relevant for records, streaks and XP.
type Workout struct {
	ID          int
	UserID      int
	ExerciseID  int
	Sets        *int
	Reps        *int
	Weight      *float64
	DurationMin *int
	DistanceKm  *float64
	Intensity   string
	WorkoutDate time.Time
}

func (w Workout) durationMinutes() int {
	if w.DurationMin == nil {
		return 0
	}
	return *w.DurationMin
}
