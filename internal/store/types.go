// Package store provides the append-only SQLite event log for moodwatch:
// mood ratings, activities, and sleep sessions, queryable by time window.
package store

import "time"

// MoodEntry is a single mood rating at a point in time.
type MoodEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// MoodLevel is the caller-chosen rating, conventionally 1-10.
	MoodLevel float64 `json:"mood_level"`

	// Emotions lists specific emotions in the order the user gave them.
	Emotions []string `json:"emotions,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ActivityEntry records an activity of a given type.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// ActivityType is a free-form category like "exercise" or "social".
	ActivityType string `json:"activity_type"`

	// DurationMinutes is how long the activity lasted, when known.
	DurationMinutes *int `json:"duration_minutes,omitempty"`

	// Intensity is an optional effort rating, conventionally 1-5.
	Intensity *int `json:"intensity,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// SleepEntry records one sleep session.
type SleepEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// DurationHours is the total time slept.
	DurationHours float64 `json:"duration_hours"`

	// Quality is an optional rating, conventionally 1-10.
	Quality *float64 `json:"quality,omitempty"`

	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Archive is the JSON export format for a complete event log.
type Archive struct {
	MoodEntries     []MoodEntry     `json:"mood_entries"`
	ActivityEntries []ActivityEntry `json:"activity_entries"`
	SleepEntries    []SleepEntry    `json:"sleep_entries"`
}
