package analytics

import (
	"math"
	"sort"
	"time"
)

// WorkoutRow is a single workout joined with its exercise, the unit of
// input for all analytics calculations.
type WorkoutRow struct {
	ExerciseName string
	Category     string
	MuscleGroup  *string
	Sets         *int
	Reps         *int
	Weight       *float64
	DurationMin  *int
	Calories     *int
	WorkoutDate  time.Time
}

type HeatmapCell struct {
	Count         int `json:"count"`
	TotalDuration int `json:"totalDuration"`
	TotalCalories int `json:"totalCalories"`
}

type ProgressPoint struct {
	Date     string   `json:"date"`
	Weight   *float64 `json:"weight"`
	Reps     *int     `json:"reps"`
	Sets     *int     `json:"sets"`
	Duration *int     `json:"duration"`
	Volume   *float64 `json:"volume"`
}

type DistributionEntry struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type VolumePoint struct {
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

type ConsistencyScore struct {
	Score       int    `json:"score"`
	WorkoutDays int    `json:"workoutDays"`
	TotalDays   int    `json:"totalDays"`
	Consistency string `json:"consistency"`
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Heatmap groups workouts per calendar day, with duration and calories
// summed up for the frontend activity calendar.
func Heatmap(rows []WorkoutRow) map[string]HeatmapCell {
	heatmap := make(map[string]HeatmapCell)
	for _, row := range rows {
		cell := heatmap[dateKey(row.WorkoutDate)]
		cell.Count++
		if row.DurationMin != nil {
			cell.TotalDuration += *row.DurationMin
		}
		if row.Calories != nil {
			cell.TotalCalories += *row.Calories
		}
		heatmap[dateKey(row.WorkoutDate)] = cell
	}
	return heatmap
}

// Progress groups workouts per exercise name, each point carrying the
// session volume: weight x reps x sets (sets defaulting to 1). Volume
// stays null when weight or reps are missing.
func Progress(rows []WorkoutRow) map[string][]ProgressPoint {
	progress := make(map[string][]ProgressPoint)
	for _, row := range rows {
		point := ProgressPoint{
			Date:     dateKey(row.WorkoutDate),
			Weight:   row.Weight,
			Reps:     row.Reps,
			Sets:     row.Sets,
			Duration: row.DurationMin,
		}
		if row.Weight != nil && row.Reps != nil {
			sets := 1
			if row.Sets != nil {
				sets = *row.Sets
			}
			volume := *row.Weight * float64(*row.Reps) * float64(sets)
			point.Volume = &volume
		}
		progress[row.ExerciseName] = append(progress[row.ExerciseName], point)
	}
	return progress
}

func distribution(rows []WorkoutRow, labelOf func(WorkoutRow) string) []DistributionEntry {
	if len(rows) == 0 {
		return []DistributionEntry{}
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[labelOf(row)]++
	}

	entries := make([]DistributionEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, DistributionEntry{
			Label:      label,
			Count:      count,
			Percentage: math.Round(float64(count)/float64(len(rows))*1000) / 10,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

func DistributionByCategory(rows []WorkoutRow) []DistributionEntry {
	return distribution(rows, func(row WorkoutRow) string {
		return row.Category
	})
}

func DistributionByMuscleGroup(rows []WorkoutRow) []DistributionEntry {
	return distribution(rows, func(row WorkoutRow) string {
		if row.MuscleGroup == nil || *row.MuscleGroup == "" {
			return "Other"
		}
		return *row.MuscleGroup
	})
}

// VolumeOverTime sums the daily training volume, counting zero for
// workouts without weight, reps or sets.
func VolumeOverTime(rows []WorkoutRow) []VolumePoint {
	volumeByDate := make(map[string]float64)
	for _, row := range rows {
		var volume float64
		if row.Weight != nil && row.Reps != nil && row.Sets != nil {
			volume = *row.Weight * float64(*row.Reps) * float64(*row.Sets)
		}
		volumeByDate[dateKey(row.WorkoutDate)] += volume
	}

	dates := make([]string, 0, len(volumeByDate))
	for date := range volumeByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]VolumePoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, VolumePoint{
			Date:   date,
			Volume: int(math.Round(volumeByDate[date])),
		})
	}
	return points
}

// Consistency scores the share of distinct workout days in the window,
// 0-100.
func Consistency(rows []WorkoutRow, days int) ConsistencyScore {
	workoutDays := make(map[string]struct{})
	for _, row := range rows {
		workoutDays[dateKey(row.WorkoutDate)] = struct{}{}
	}

	score := float64(len(workoutDays)) / float64(days) * 100
	rating := "needs_improvement"
	switch {
	case score > 70:
		rating = "excellent"
	case score > 40:
		rating = "good"
	}

	return ConsistencyScore{
		Score:       int(math.Round(score)),
		WorkoutDays: len(workoutDays),
		TotalDays:   days,
		Consistency: rating,
	}
}
