package analytics

import "time"

// Summary is the aggregate picture of a user's training in a day window.
type Summary struct {
	TotalWorkouts     int     `json:"totalWorkouts"`
	TotalSets         int     `json:"totalSets"`
	TotalVolume       int     `json:"totalVolume"`
	AvgRepsPerSet     float64 `json:"avgRepsPerSet"`
	AvgSetsPerWorkout float64 `json:"avgSetsPerWorkout"`
	ActiveDays        int     `json:"activeDays"`
	ConsistencyScore  float64 `json:"consistencyScore"`
}

type SetsPerDayEntry struct {
	Date time.Time `json:"date"`
	Sets int       `json:"sets"`
}

type BodyPartCount struct {
	BodyPart string `json:"bodyPart"`
	Count    int    `json:"count"`
}

type DayCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Aggregates are the raw numbers pulled from the store, before the
// derived scores are computed.
type Aggregates struct {
	TotalWorkouts int
	TotalSets     int
	TotalVolume   int
	AvgRepsPerSet float64
	ActiveDays    int
}
