package exercises

import "time"

var Category = struct {
	Strength     string
	Calisthenics string
	Cardio       string
	Flexibility  string
}{
	Strength:     "Strength",
	Calisthenics: "Calisthenics",
	Cardio:       "Cardio",
	Flexibility:  "Flexibility",
}

var MuscleGroup = struct {
	Chest     string
	Back      string
	Shoulders string
	Arms      string
	Legs      string
	Core      string
	FullBody  string
	Other     string
}{
	Chest:     "chest",
	Back:      "back",
	Shoulders: "shoulders",
	Arms:      "arms",
	Legs:      "legs",
	Core:      "core",
	FullBody:  "full_body",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Chest,
	MuscleGroup.Back,
	MuscleGroup.Shoulders,
	MuscleGroup.Arms,
	MuscleGroup.Legs,
	MuscleGroup.Core,
	MuscleGroup.FullBody,
	MuscleGroup.Other,
}

type Exercise struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	MuscleGroup *string   `json:"muscleGroup,omitempty"`
	UserID      *int      `json:"userId,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}
