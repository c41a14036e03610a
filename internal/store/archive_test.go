package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	src := openTestDB(t)

	ts := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	duration := 30
	quality := 8.0

	require.NoError(t, src.InsertMoodEntry(&MoodEntry{
		Timestamp: ts, MoodLevel: 6, Emotions: []string{"calm"},
	}))
	require.NoError(t, src.InsertActivityEntry(&ActivityEntry{
		Timestamp: ts, ActivityType: "exercise", DurationMinutes: &duration,
	}))
	require.NoError(t, src.InsertSleepEntry(&SleepEntry{
		Timestamp: ts, DurationHours: 7.5, Quality: &quality,
	}))

	var buf bytes.Buffer
	require.NoError(t, src.ExportArchive(&buf))

	dst := openTestDB(t)
	n, err := dst.ImportArchive(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	moods, err := dst.AllMoodEntries()
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, []string{"calm"}, moods[0].Emotions)

	activities, err := dst.AllActivityEntries()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.NotNil(t, activities[0].DurationMinutes)
	assert.Equal(t, 30, *activities[0].DurationMinutes)

	sleeps, err := dst.AllSleepEntries()
	require.NoError(t, err)
	require.Len(t, sleeps, 1)
	assert.Equal(t, 7.5, sleeps[0].DurationHours)
}

func TestImportArchiveRejectsMalformedJSON(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ImportArchive(strings.NewReader("{not json"))
	require.Error(t, err)

	moods, err := db.AllMoodEntries()
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestImportArchiveValidatesBeforeWriting(t *testing.T) {
	db := openTestDB(t)

	// Second activity entry is missing its type, so nothing may be written.
	archive := `{
		"mood_entries": [{"timestamp": "2026-02-01T08:00:00Z", "mood_level": 6}],
		"activity_entries": [
			{"timestamp": "2026-02-01T08:00:00Z", "activity_type": "walk"},
			{"timestamp": "2026-02-01T09:00:00Z"}
		],
		"sleep_entries": []
	}`

	_, err := db.ImportArchive(strings.NewReader(archive))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity entry 1")

	moods, err := db.AllMoodEntries()
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestImportArchiveRejectsMissingTimestamp(t *testing.T) {
	db := openTestDB(t)

	archive := `{"mood_entries": [{"mood_level": 6}]}`
	_, err := db.ImportArchive(strings.NewReader(archive))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing timestamp")
}
