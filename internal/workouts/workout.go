package workouts

import "time"

var Intensity = struct {
	Low    string
	Medium string
	High   string
}{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

// ExerciseInfo is the exercise slice carried along with each workout.
type ExerciseInfo struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	MuscleGroup *string `json:"muscleGroup,omitempty"`
}

type Workout struct {
	ID          int           `json:"id"`
	UserID      int           `json:"userId"`
	ExerciseID  int           `json:"exerciseId"`
	Sets        *int          `json:"sets,omitempty"`
	Reps        *int          `json:"reps,omitempty"`
	Weight      *float64      `json:"weight,omitempty"`
	DurationMin *int          `json:"duration,omitempty"`
	DistanceKm  *float64      `json:"distance,omitempty"`
	Calories    *int          `json:"calories,omitempty"`
	Intensity   string        `json:"intensity,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
	WorkoutDate time.Time     `json:"workoutDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	Exercise    *ExerciseInfo `json:"exercise,omitempty"`
}

type ListParams struct {
	UserID     int
	ExerciseID int // 0 - all exercises
	From       *time.Time
	To         *time.Time
}
