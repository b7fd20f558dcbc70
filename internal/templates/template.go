package templates

import "time"

// Template is a stored workout plan: an ordered list of planned
// exercises a user can turn into real workout entries in one go.
// Public templates are visible to (and usable by) everyone.
type Template struct {
	ID               int                `json:"id"`
	UserID           int                `json:"userId"`
	Name             string             `json:"name"`
	Description      *string            `json:"description,omitempty"`
	Category         *string            `json:"category,omitempty"`
	Difficulty       *string            `json:"difficulty,omitempty"`
	EstimatedTimeMin *int               `json:"estimatedTime,omitempty"`
	IsPublic         bool               `json:"isPublic"`
	UsageCount       int                `json:"usageCount"`
	CreatedAt        time.Time          `json:"createdAt"`
	Exercises        []TemplateExercise `json:"exercises"`
}

// TemplateExercise is one planned entry of a template. Position keeps
// the author's ordering.
type TemplateExercise struct {
	ID           int     `json:"id"`
	ExerciseID   int     `json:"exerciseId"`
	Position     int     `json:"position"`
	Sets         *int    `json:"sets,omitempty"`
	Reps         *int    `json:"reps,omitempty"`
	DurationMin  *int    `json:"duration,omitempty"`
	RestTimeSec  *int    `json:"restTime,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ExerciseName string  `json:"exerciseName,omitempty"`
}

// AccessibleBy tells whether the given user may view or use the template.
func (t *Template) AccessibleBy(userID int) bool {
	return t.IsPublic || t.UserID == userID
}
