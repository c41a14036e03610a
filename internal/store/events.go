package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is RFC3339 with fixed-width nanoseconds so that stored
// timestamps sort lexicographically in range queries.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// InsertMoodEntry appends a mood entry to the log. A missing ID or
// timestamp is filled in before writing.
func (db *DB) InsertMoodEntry(e *MoodEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	emotions := ""
	if len(e.Emotions) > 0 {
		b, err := json.Marshal(e.Emotions)
		if err != nil {
			return fmt.Errorf("encoding emotions: %w", err)
		}
		emotions = string(b)
	}

	_, err := db.conn.Exec(
		"INSERT INTO mood_entries (id, timestamp, mood_level, emotions, notes) VALUES (?, ?, ?, ?, ?)",
		e.ID, formatTime(e.Timestamp), e.MoodLevel, emotions, e.Notes,
	)
	return err
}

// InsertActivityEntry appends an activity entry to the log.
func (db *DB) InsertActivityEntry(e *ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	var duration, intensity any
	if e.DurationMinutes != nil {
		duration = *e.DurationMinutes
	}
	if e.Intensity != nil {
		intensity = *e.Intensity
	}

	_, err := db.conn.Exec(
		"INSERT INTO activity_entries (id, timestamp, activity_type, duration_minutes, intensity, notes) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, formatTime(e.Timestamp), e.ActivityType, duration, intensity, e.Notes,
	)
	return err
}

// InsertSleepEntry appends a sleep entry to the log.
func (db *DB) InsertSleepEntry(e *SleepEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	var quality, start, end any
	if e.Quality != nil {
		quality = *e.Quality
	}
	if e.StartTime != nil {
		start = formatTime(*e.StartTime)
	}
	if e.EndTime != nil {
		end = formatTime(*e.EndTime)
	}

	_, err := db.conn.Exec(
		"INSERT INTO sleep_entries (id, timestamp, duration_hours, quality, start_time, end_time, notes) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.ID, formatTime(e.Timestamp), e.DurationHours, quality, start, end, e.Notes,
	)
	return err
}

// MoodEntriesBetween returns mood entries with start <= timestamp <= end,
// in chronological order.
func (db *DB) MoodEntriesBetween(start, end time.Time) ([]MoodEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, mood_level, emotions, notes FROM mood_entries WHERE timestamp >= ? AND timestamp <= ? ORDER BY timestamp, id",
		formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanMoodEntries(rows)
}

// AllMoodEntries returns every mood entry in chronological order.
func (db *DB) AllMoodEntries() ([]MoodEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, mood_level, emotions, notes FROM mood_entries ORDER BY timestamp, id",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanMoodEntries(rows)
}

// ActivityEntriesBetween returns activity entries with
// start <= timestamp <= end, in chronological order.
func (db *DB) ActivityEntriesBetween(start, end time.Time) ([]ActivityEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, activity_type, duration_minutes, intensity, notes FROM activity_entries WHERE timestamp >= ? AND timestamp <= ? ORDER BY timestamp, id",
		formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanActivityEntries(rows)
}

// AllActivityEntries returns every activity entry in chronological order.
func (db *DB) AllActivityEntries() ([]ActivityEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, activity_type, duration_minutes, intensity, notes FROM activity_entries ORDER BY timestamp, id",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanActivityEntries(rows)
}

// SleepEntriesBetween returns sleep entries with start <= timestamp <= end,
// in chronological order.
func (db *DB) SleepEntriesBetween(start, end time.Time) ([]SleepEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, duration_hours, quality, start_time, end_time, notes FROM sleep_entries WHERE timestamp >= ? AND timestamp <= ? ORDER BY timestamp, id",
		formatTime(start), formatTime(end),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanSleepEntries(rows)
}

// AllSleepEntries returns every sleep entry in chronological order.
func (db *DB) AllSleepEntries() ([]SleepEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, timestamp, duration_hours, quality, start_time, end_time, notes FROM sleep_entries ORDER BY timestamp, id",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanSleepEntries(rows)
}

func scanMoodEntries(rows *sql.Rows) ([]MoodEntry, error) {
	var entries []MoodEntry
	for rows.Next() {
		var e MoodEntry
		var ts string
		var emotions, notes sql.NullString
		if err := rows.Scan(&e.ID, &ts, &e.MoodLevel, &emotions, &notes); err != nil {
			return nil, err
		}
		t, err := parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		e.Timestamp = t
		if emotions.String != "" {
			if err := json.Unmarshal([]byte(emotions.String), &e.Emotions); err != nil {
				return nil, fmt.Errorf("decoding emotions: %w", err)
			}
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanActivityEntries(rows *sql.Rows) ([]ActivityEntry, error) {
	var entries []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		var ts string
		var duration, intensity sql.NullInt64
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &ts, &e.ActivityType, &duration, &intensity, &notes); err != nil {
			return nil, err
		}
		t, err := parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		e.Timestamp = t
		if duration.Valid {
			d := int(duration.Int64)
			e.DurationMinutes = &d
		}
		if intensity.Valid {
			i := int(intensity.Int64)
			e.Intensity = &i
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanSleepEntries(rows *sql.Rows) ([]SleepEntry, error) {
	var entries []SleepEntry
	for rows.Next() {
		var e SleepEntry
		var ts string
		var quality sql.NullFloat64
		var start, end, notes sql.NullString
		if err := rows.Scan(&e.ID, &ts, &e.DurationHours, &quality, &start, &end, &notes); err != nil {
			return nil, err
		}
		t, err := parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		e.Timestamp = t
		if quality.Valid {
			q := quality.Float64
			e.Quality = &q
		}
		if start.Valid && start.String != "" {
			if st, err := parseTime(start.String); err == nil {
				e.StartTime = &st
			}
		}
		if end.Valid && end.String != "" {
			if et, err := parseTime(end.String); err == nil {
				e.EndTime = &et
			}
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
