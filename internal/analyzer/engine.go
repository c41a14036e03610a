package analyzer

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/store"
)

// EventSource is the read surface the engine needs from the event log.
// *store.DB satisfies it.
type EventSource interface {
	MoodEntriesBetween(start, end time.Time) ([]store.MoodEntry, error)
	ActivityEntriesBetween(start, end time.Time) ([]store.ActivityEntry, error)
	SleepEntriesBetween(start, end time.Time) ([]store.SleepEntry, error)
}

// Config holds the empirical thresholds the analyses use. The margins
// and floor are preserved as-is from long-running defaults; changing
// them changes which insights get reported.
type Config struct {
	// TimeOfDayMargin is how much a band's mean mood must exceed every
	// other band's to be called the best time of day.
	TimeOfDayMargin float64

	// PeriodMargin is the weekday/weekend analogue of TimeOfDayMargin.
	PeriodMargin float64

	// CorrelationFloor is the minimum absolute strongest-lag
	// correlation for a predictor to be retained (exclusive bound).
	CorrelationFloor float64

	// ClusterSeed makes clustering reproducible for identical input.
	ClusterSeed int64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TimeOfDayMargin:  0.5,
		PeriodMargin:     0.5,
		CorrelationFloor: 0.2,
		ClusterSeed:      42,
	}
}

// Engine runs analyses over an event source. It holds no mutable
// state, so one Engine may serve concurrent analysis calls as long as
// the source serializes its own writes.
type Engine struct {
	source EventSource
	cfg    Config
	now    func() time.Time
}

// New returns an engine over the given source.
func New(source EventSource, cfg Config) *Engine {
	return NewWithClock(source, cfg, time.Now)
}

// NewWithClock returns an engine with an explicit clock, used by tests
// to pin the analysis window.
func NewWithClock(source EventSource, cfg Config, now func() time.Time) *Engine {
	return &Engine{source: source, cfg: cfg, now: now}
}

func validateDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("days must be positive, got %d", days)
	}
	return nil
}

func validateMaxLag(maxLag int) error {
	if maxLag < 1 {
		return fmt.Errorf("max lag must be at least 1, got %d", maxLag)
	}
	return nil
}

// window returns the inclusive [now-days, now] analysis window.
func (e *Engine) window(days int) (start, end time.Time) {
	end = e.now()
	start = end.AddDate(0, 0, -days)
	return start, end
}

// moodEntries loads the raw mood entries for the window.
func (e *Engine) moodEntries(days int) ([]store.MoodEntry, error) {
	start, end := e.window(days)
	moods, err := e.source.MoodEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading mood entries: %w", err)
	}
	return moods, nil
}

// loadDaily builds the regularized daily table for the window.
func (e *Engine) loadDaily(days int) (*dailyTable, error) {
	start, end := e.window(days)

	moods, err := e.source.MoodEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading mood entries: %w", err)
	}
	activities, err := e.source.ActivityEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading activity entries: %w", err)
	}
	sleeps, err := e.source.SleepEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading sleep entries: %w", err)
	}

	return buildDailyTable(moods, activities, sleeps, end, days), nil
}
