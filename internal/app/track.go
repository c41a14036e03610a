package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/moodwatch/internal/store"
	"github.com/spf13/cobra"
)

var (
	trackTime     string
	trackNotes    string
	trackEmotions []string

	trackDuration  int
	trackIntensity int

	trackQuality    float64
	trackSleepStart string
	trackSleepEnd   string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Log mood, activity and sleep entries",
	Long: `Append entries to the local event log. Every analysis command reads
from this log, so the more consistently you track, the more the
analyses can tell you.`,
}

var trackMoodCmd = &cobra.Command{
	Use:   "mood <level>",
	Short: "Log a mood rating (1-10)",
	Long: `Log a mood rating on a 1-10 scale, optionally with the emotions you
felt and a note.

Examples:
  moodwatch track mood 7
  moodwatch track mood 8 --emotions happy,relaxed --notes "long walk"
  moodwatch track mood 4 --time "2026-08-20 21:30"`,
	Args: cobra.ExactArgs(1),
	RunE: runTrackMood,
}

var trackActivityCmd = &cobra.Command{
	Use:   "activity <type>",
	Short: "Log an activity",
	Long: `Log an activity of any free-form type. Duration and intensity feed
the correlation and causality analyses.

Examples:
  moodwatch track activity exercise --duration 45 --intensity 4
  moodwatch track activity reading --duration 30`,
	Args: cobra.ExactArgs(1),
	RunE: runTrackActivity,
}

var trackSleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Log a sleep session",
	Long: `Log a sleep session by its duration in hours, optionally with a
1-10 quality rating and start/end times.

Examples:
  moodwatch track sleep 7.5 --quality 8
  moodwatch track sleep 6 --start "2026-08-19 23:30" --end "2026-08-20 05:30"`,
	Args: cobra.ExactArgs(1),
	RunE: runTrackSleep,
}

func init() {
	for _, cmd := range []*cobra.Command{trackMoodCmd, trackActivityCmd, trackSleepCmd} {
		cmd.Flags().StringVar(&trackTime, "time", "", "Entry time (default: now)")
		cmd.Flags().StringVar(&trackNotes, "notes", "", "Optional note")
	}

	trackMoodCmd.Flags().StringSliceVar(&trackEmotions, "emotions", nil, "Emotions felt (comma separated)")

	trackActivityCmd.Flags().IntVar(&trackDuration, "duration", 0, "Duration in minutes")
	trackActivityCmd.Flags().IntVar(&trackIntensity, "intensity", 0, "Intensity rating (1-5)")

	trackSleepCmd.Flags().Float64Var(&trackQuality, "quality", 0, "Sleep quality rating (1-10)")
	trackSleepCmd.Flags().StringVar(&trackSleepStart, "start", "", "When you fell asleep")
	trackSleepCmd.Flags().StringVar(&trackSleepEnd, "end", "", "When you woke up")

	trackCmd.AddCommand(trackMoodCmd)
	trackCmd.AddCommand(trackActivityCmd)
	trackCmd.AddCommand(trackSleepCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackMood(cmd *cobra.Command, args []string) error {
	level, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("mood level must be a number: %w", err)
	}
	if level < 1 || level > 10 {
		return fmt.Errorf("mood level %g is outside the 1-10 scale", level)
	}

	ts, err := parseWhen(trackTime)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	entry := &store.MoodEntry{
		Timestamp: ts,
		MoodLevel: level,
		Emotions:  trackEmotions,
		Notes:     trackNotes,
	}
	if err := s.db.InsertMoodEntry(entry); err != nil {
		return fmt.Errorf("recording mood entry: %w", err)
	}

	fmt.Printf("Logged mood %g", level)
	if len(trackEmotions) > 0 {
		fmt.Printf(" (%s)", strings.Join(trackEmotions, ", "))
	}
	fmt.Println()
	return nil
}

func runTrackActivity(cmd *cobra.Command, args []string) error {
	activityType := strings.TrimSpace(args[0])
	if activityType == "" {
		return fmt.Errorf("activity type must not be empty")
	}

	ts, err := parseWhen(trackTime)
	if err != nil {
		return err
	}

	entry := &store.ActivityEntry{
		Timestamp:    ts,
		ActivityType: activityType,
		Notes:        trackNotes,
	}
	if cmd.Flags().Changed("duration") {
		if trackDuration < 0 {
			return fmt.Errorf("duration must not be negative")
		}
		d := trackDuration
		entry.DurationMinutes = &d
	}
	if cmd.Flags().Changed("intensity") {
		if trackIntensity < 1 || trackIntensity > 5 {
			return fmt.Errorf("intensity %d is outside the 1-5 scale", trackIntensity)
		}
		i := trackIntensity
		entry.Intensity = &i
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.db.InsertActivityEntry(entry); err != nil {
		return fmt.Errorf("recording activity entry: %w", err)
	}

	fmt.Printf("Logged activity %s", activityType)
	if entry.DurationMinutes != nil {
		fmt.Printf(" (%d min)", *entry.DurationMinutes)
	}
	fmt.Println()
	return nil
}

func runTrackSleep(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("sleep duration must be a number of hours: %w", err)
	}
	if hours <= 0 || hours > 24 {
		return fmt.Errorf("sleep duration %g hours is implausible", hours)
	}

	ts, err := parseWhen(trackTime)
	if err != nil {
		return err
	}

	entry := &store.SleepEntry{
		Timestamp:     ts,
		DurationHours: hours,
		Notes:         trackNotes,
	}
	if cmd.Flags().Changed("quality") {
		if trackQuality < 1 || trackQuality > 10 {
			return fmt.Errorf("sleep quality %g is outside the 1-10 scale", trackQuality)
		}
		q := trackQuality
		entry.Quality = &q
	}
	if trackSleepStart != "" {
		start, err := parseWhen(trackSleepStart)
		if err != nil {
			return err
		}
		entry.StartTime = &start
	}
	if trackSleepEnd != "" {
		end, err := parseWhen(trackSleepEnd)
		if err != nil {
			return err
		}
		entry.EndTime = &end
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.db.InsertSleepEntry(entry); err != nil {
		return fmt.Errorf("recording sleep entry: %w", err)
	}

	fmt.Printf("Logged %g hours of sleep", hours)
	if entry.Quality != nil {
		fmt.Printf(" (quality %g)", *entry.Quality)
	}
	fmt.Println()
	return nil
}
