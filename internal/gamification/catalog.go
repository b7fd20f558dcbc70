package gamification

// DefaultAchievements is the built-in achievement catalog, ensured to
// exist in storage on startup. Requirements use the same JSON rule
// shapes the rule engine decodes.
var DefaultAchievements = []Achievement{
	// workout count
	{
		Name:        "First Steps",
		Description: "Log your first workout",
		Category:    "workout",
		Requirement: Requirement{Kind: ReqTotalWorkouts, Threshold: 1},
		XPReward:    25,
		Rarity:      "common",
	},
	{
		Name:        "Getting Into It",
		Description: "Log 10 workouts",
		Category:    "workout",
		Requirement: Requirement{Kind: ReqTotalWorkouts, Threshold: 10},
		XPReward:    50,
		Rarity:      "common",
	},
	{
		Name:        "Committed",
		Description: "Log 50 workouts",
		Category:    "workout",
		Requirement: Requirement{Kind: ReqTotalWorkouts, Threshold: 50},
		XPReward:    150,
		Rarity:      "rare",
	},
	{
		Name:        "Centurion",
		Description: "Log 100 workouts",
		Category:    "workout",
		Requirement: Requirement{Kind: ReqTotalWorkouts, Threshold: 100},
		XPReward:    300,
		Rarity:      "epic",
	},
	// streaks
	{
		Name:        "Warming Up",
		Description: "Work out 3 days in a row",
		Category:    "streak",
		Requirement: Requirement{Kind: ReqConsecutiveDays, Threshold: 3},
		XPReward:    30,
		Rarity:      "common",
	},
	{
		Name:        "Week Warrior",
		Description: "Work out 7 days in a row",
		Category:    "streak",
		Requirement: Requirement{Kind: ReqConsecutiveDays, Threshold: 7},
		XPReward:    100,
		Rarity:      "rare",
	},
	{
		Name:        "Unstoppable",
		Description: "Work out 30 days in a row",
		Category:    "streak",
		Requirement: Requirement{Kind: ReqConsecutiveDays, Threshold: 30},
		XPReward:    500,
		Rarity:      "legendary",
	},
	{
		Name:        "Comeback Kid",
		Description: "Reach a longest streak of 14 days",
		Category:    "streak",
		Requirement: Requirement{Kind: ReqLongestStreak, Threshold: 14},
		XPReward:    200,
		Rarity:      "epic",
	},
	// milestones
	{
		Name:        "Leveling Up",
		Description: "Reach level 5",
		Category:    "milestone",
		Requirement: Requirement{Kind: ReqReachLevel, Threshold: 5},
		XPReward:    100,
		Rarity:      "rare",
	},
	{
		Name:        "Elite",
		Description: "Reach level 10",
		Category:    "milestone",
		Requirement: Requirement{Kind: ReqReachLevel, Threshold: 10},
		XPReward:    250,
		Rarity:      "epic",
	},
	{
		Name:        "Point Collector",
		Description: "Collect 1000 XP",
		Category:    "milestone",
		Requirement: Requirement{Kind: ReqTotalXP, Threshold: 1000},
		XPReward:    100,
		Rarity:      "rare",
	},
	{
		Name:        "Point Hoarder",
		Description: "Collect 5000 XP",
		Category:    "milestone",
		Requirement: Requirement{Kind: ReqTotalXP, Threshold: 5000},
		XPReward:    300,
		Rarity:      "legendary",
	},
}
