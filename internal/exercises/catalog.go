package exercises

// DefaultExercises is the built-in exercise catalog, seeded on startup.
// Cardio and flexibility entries carry no muscle group on purpose.
func DefaultExercises() []Exercise {
	chest := MuscleGroup.Chest
	back := MuscleGroup.Back
	shoulders := MuscleGroup.Shoulders
	arms := MuscleGroup.Arms
	legs := MuscleGroup.Legs
	core := MuscleGroup.Core
	fullBody := MuscleGroup.FullBody

	return []Exercise{
		// strength - upper body
		{Name: "Bench Press", Category: Category.Strength, MuscleGroup: &chest, IsDefault: true},
		{Name: "Incline Bench Press", Category: Category.Strength, MuscleGroup: &chest, IsDefault: true},
		{Name: "Decline Bench Press", Category: Category.Strength, MuscleGroup: &chest, IsDefault: true},
		{Name: "Dumbbell Chest Press", Category: Category.Strength, MuscleGroup: &chest, IsDefault: true},
		{Name: "Chest Fly", Category: Category.Strength, MuscleGroup: &chest, IsDefault: true},
		{Name: "Overhead Press", Category: Category.Strength, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Arnold Press", Category: Category.Strength, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Lateral Raise", Category: Category.Strength, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Front Raise", Category: Category.Strength, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Rear Delt Fly", Category: Category.Strength, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Pull Up", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "Chin Up", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "Lat Pulldown", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "Barbell Row", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "Dumbbell Row", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "T-Bar Row", Category: Category.Strength, MuscleGroup: &back, IsDefault: true},
		{Name: "Bicep Curl", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Hammer Curl", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Preacher Curl", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Tricep Dip", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Tricep Pushdown", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Skull Crusher", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},
		{Name: "Close Grip Bench Press", Category: Category.Strength, MuscleGroup: &arms, IsDefault: true},

		// strength - lower body
		{Name: "Squat", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Front Squat", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Goblet Squat", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Bulgarian Split Squat", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Deadlift", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Romanian Deadlift", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Sumo Deadlift", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Leg Press", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Leg Extension", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Leg Curl", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Lunges", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Walking Lunges", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Calf Raise", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},
		{Name: "Hip Thrust", Category: Category.Strength, MuscleGroup: &legs, IsDefault: true},

		// strength - core
		{Name: "Plank", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Side Plank", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Crunches", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Sit Ups", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Russian Twist", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Leg Raise", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Hanging Leg Raise", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Ab Wheel Rollout", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},
		{Name: "Cable Crunch", Category: Category.Strength, MuscleGroup: &core, IsDefault: true},

		// calisthenics
		{Name: "Push Up", Category: Category.Calisthenics, MuscleGroup: &chest, IsDefault: true},
		{Name: "Diamond Push Up", Category: Category.Calisthenics, MuscleGroup: &chest, IsDefault: true},
		{Name: "Wide Push Up", Category: Category.Calisthenics, MuscleGroup: &chest, IsDefault: true},
		{Name: "Decline Push Up", Category: Category.Calisthenics, MuscleGroup: &chest, IsDefault: true},
		{Name: "Burpees", Category: Category.Calisthenics, MuscleGroup: &fullBody, IsDefault: true},
		{Name: "Mountain Climbers", Category: Category.Calisthenics, MuscleGroup: &fullBody, IsDefault: true},
		{Name: "Jumping Jacks", Category: Category.Calisthenics, MuscleGroup: &fullBody, IsDefault: true},
		{Name: "Box Jumps", Category: Category.Calisthenics, MuscleGroup: &legs, IsDefault: true},
		{Name: "Jump Squats", Category: Category.Calisthenics, MuscleGroup: &legs, IsDefault: true},
		{Name: "Pistol Squat", Category: Category.Calisthenics, MuscleGroup: &legs, IsDefault: true},
		{Name: "Handstand Push Up", Category: Category.Calisthenics, MuscleGroup: &shoulders, IsDefault: true},
		{Name: "Muscle Up", Category: Category.Calisthenics, MuscleGroup: &back, IsDefault: true},

		// cardio
		{Name: "Running", Category: Category.Cardio, IsDefault: true},
		{Name: "Sprinting", Category: Category.Cardio, IsDefault: true},
		{Name: "Jogging", Category: Category.Cardio, IsDefault: true},
		{Name: "Cycling", Category: Category.Cardio, IsDefault: true},
		{Name: "Stationary Bike", Category: Category.Cardio, IsDefault: true},
		{Name: "Swimming", Category: Category.Cardio, IsDefault: true},
		{Name: "Rowing", Category: Category.Cardio, IsDefault: true},
		{Name: "Jump Rope", Category: Category.Cardio, IsDefault: true},
		{Name: "Elliptical", Category: Category.Cardio, IsDefault: true},
		{Name: "Stair Climber", Category: Category.Cardio, IsDefault: true},
		{Name: "Battle Ropes", Category: Category.Cardio, IsDefault: true},
		{Name: "High Knees", Category: Category.Cardio, IsDefault: true},

		// flexibility
		{Name: "Yoga", Category: Category.Flexibility, IsDefault: true},
		{Name: "Stretching", Category: Category.Flexibility, IsDefault: true},
		{Name: "Pilates", Category: Category.Flexibility, IsDefault: true},
		{Name: "Foam Rolling", Category: Category.Flexibility, IsDefault: true},
		{Name: "Dynamic Stretching", Category: Category.Flexibility, IsDefault: true},
		{Name: "Static Stretching", Category: Category.Flexibility, IsDefault: true},
	}
}
