package store

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportArchive writes every entry in the log as a JSON archive.
func (db *DB) ExportArchive(w io.Writer) error {
	moods, err := db.AllMoodEntries()
	if err != nil {
		return fmt.Errorf("reading mood entries: %w", err)
	}
	activities, err := db.AllActivityEntries()
	if err != nil {
		return fmt.Errorf("reading activity entries: %w", err)
	}
	sleeps, err := db.AllSleepEntries()
	if err != nil {
		return fmt.Errorf("reading sleep entries: %w", err)
	}

	archive := Archive{
		MoodEntries:     moods,
		ActivityEntries: activities,
		SleepEntries:    sleeps,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(archive)
}

// ImportArchive reads a JSON archive and appends its entries to the log.
// Entries are validated before any write happens, so a malformed archive
// leaves the log untouched. Returns the number of entries imported.
func (db *DB) ImportArchive(r io.Reader) (int, error) {
	var archive Archive
	dec := json.NewDecoder(r)
	if err := dec.Decode(&archive); err != nil {
		return 0, fmt.Errorf("decoding archive: %w", err)
	}

	for i, e := range archive.MoodEntries {
		if e.Timestamp.IsZero() {
			return 0, fmt.Errorf("mood entry %d: missing timestamp", i)
		}
	}
	for i, e := range archive.ActivityEntries {
		if e.Timestamp.IsZero() {
			return 0, fmt.Errorf("activity entry %d: missing timestamp", i)
		}
		if e.ActivityType == "" {
			return 0, fmt.Errorf("activity entry %d: missing activity_type", i)
		}
	}
	for i, e := range archive.SleepEntries {
		if e.Timestamp.IsZero() {
			return 0, fmt.Errorf("sleep entry %d: missing timestamp", i)
		}
		if e.DurationHours < 0 {
			return 0, fmt.Errorf("sleep entry %d: negative duration", i)
		}
	}

	count := 0
	for i := range archive.MoodEntries {
		if err := db.InsertMoodEntry(&archive.MoodEntries[i]); err != nil {
			return count, fmt.Errorf("importing mood entry %d: %w", i, err)
		}
		count++
	}
	for i := range archive.ActivityEntries {
		if err := db.InsertActivityEntry(&archive.ActivityEntries[i]); err != nil {
			return count, fmt.Errorf("importing activity entry %d: %w", i, err)
		}
		count++
	}
	for i := range archive.SleepEntries {
		if err := db.InsertSleepEntry(&archive.SleepEntries[i]); err != nil {
			return count, fmt.Errorf("importing sleep entry %d: %w", i, err)
		}
		count++
	}

	return count, nil
}
