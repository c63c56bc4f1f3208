package workouts

import "time"

// Workout is the root of a user's ownership subtree: every read or write of
// its exercises and sets goes through the owning user id.
type Workout struct {
	ID     int       `json:"id"`
	UserID string    `json:"-"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
}

// WorkoutExercise links an exercise from the catalog to a workout, carrying
// a dense 1..N display order unique within the workout.
type WorkoutExercise struct {
	ID            int    `json:"id"`
	WorkoutID     int    `json:"workoutId"`
	ExerciseID    int    `json:"exerciseId"`
	ExerciseTitle string `json:"exerciseTitle,omitempty"`
	Order         int    `json:"order"`
	Notes         string `json:"notes,omitempty"`

	Sets []WorkoutSet `json:"sets"`
}

// WorkoutSet is one recorded performance unit. SetNumber is caller-supplied
// and not required to be contiguous.
type WorkoutSet struct {
	ID                int      `json:"id"`
	WorkoutExerciseID int      `json:"workoutExerciseId"`
	SetNumber         int      `json:"setNumber"`
	Reps              int      `json:"reps"`
	Weight            *float64 `json:"weight,omitempty"`
	DurationSeconds   *int     `json:"durationSeconds,omitempty"`
}

type WorkoutDetails struct {
	Workout
	Exercises []WorkoutExercise `json:"exercises"`
}

// ReorderItem is one client-supplied (workout exercise, order) pair. The
// supplied order values only determine the relative ordering; the stored
// orders are always renumbered densely from 1.
type ReorderItem struct {
	WorkoutExerciseID int `json:"workoutExerciseId"`
	Order             int `json:"order"`
}
