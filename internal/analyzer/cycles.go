package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/blackwell-systems/moodwatch/internal/stats"
)

const (
	minCycleRows = 14
	maxCycleLag  = 14

	// weeklyStrengthFloor is the minimum lag-7 autocorrelation for the
	// explicit weekly check to add a cycle.
	weeklyStrengthFloor = 0.2
)

// MoodCycles detects periodicity in the daily mood series from its
// autocorrelation structure. The smallest significant positive lag is
// the primary cycle; later significant lags that are not multiples of
// it are secondary (multiples are assumed harmonics and suppressed).
// Lag 7 is additionally checked explicitly so a weekly rhythm is not
// lost behind a shorter primary cycle.
func (e *Engine) MoodCycles(days int) (*CyclesResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	table, err := e.loadDaily(days)
	if err != nil {
		return nil, err
	}

	n := table.rows()
	if !table.hasMood || n < minCycleRows {
		return &CyclesResult{
			Status:   StatusInsufficientData,
			Message:  fmt.Sprintf("Need at least %d days of data for cycle analysis", minCycleRows),
			Insights: []string{},
		}, nil
	}

	maxLag := n / 2
	if maxLag > maxCycleLag {
		maxLag = maxCycleLag
	}

	acf, err := stats.ACF(table.mood, maxLag)
	if err != nil {
		return &CyclesResult{
			Status:   StatusError,
			Message:  fmt.Sprintf("Error in cycle analysis: %v", err),
			Insights: []string{},
		}, nil
	}
	pacf, err := stats.PACF(table.mood, maxLag)
	if err != nil {
		return &CyclesResult{
			Status:   StatusError,
			Message:  fmt.Sprintf("Error in cycle analysis: %v", err),
			Insights: []string{},
		}, nil
	}

	// 95% confidence threshold under a white-noise null.
	threshold := 1.96 / math.Sqrt(float64(n))

	acfValues := lagValues(acf, threshold)
	pacfValues := lagValues(pacf, threshold)

	var cycles []Cycle
	var primary int
	for _, v := range acfValues {
		if !v.Significant || v.Correlation <= 0 {
			continue
		}
		if primary == 0 {
			primary = v.Lag
			cycles = append(cycles, Cycle{Length: v.Lag, Strength: v.Correlation, Type: "primary"})
		} else if v.Lag%primary != 0 {
			cycles = append(cycles, Cycle{Length: v.Lag, Strength: v.Correlation, Type: "secondary"})
		}
	}

	// Explicit weekly check at the lag nearest 7.
	if len(acfValues) > 0 {
		nearest := acfValues[0]
		for _, v := range acfValues[1:] {
			if abs(v.Lag-7) < abs(nearest.Lag-7) {
				nearest = v
			}
		}
		if nearest.Lag == 7 && nearest.Correlation > weeklyStrengthFloor && !hasCycleLength(cycles, 7) {
			cycles = append(cycles, Cycle{Length: 7, Strength: nearest.Correlation, Type: "weekly"})
		}
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		return cycles[i].Strength > cycles[j].Strength
	})

	insights := []string{}
	if len(cycles) == 0 {
		insights = append(insights, "No clear cyclical patterns were detected in your mood data.")
	} else {
		for i, c := range cycles {
			if i == 2 {
				break
			}
			if c.Length == 7 {
				insights = append(insights, "Your mood appears to follow a weekly cycle.")
			} else {
				insights = append(insights, fmt.Sprintf(
					"Your mood appears to cycle approximately every %d days.", c.Length))
			}
		}
	}

	return &CyclesResult{
		Status:                 StatusSuccess,
		Autocorrelation:        acfValues,
		PartialAutocorrelation: pacfValues,
		Cycles:                 cycles,
		Insights:               insights,
	}, nil
}

// lagValues converts raw (P)ACF output to per-lag records, skipping
// lag 0.
func lagValues(values []float64, threshold float64) []ACFValue {
	out := make([]ACFValue, 0, len(values)-1)
	for lag := 1; lag < len(values); lag++ {
		out = append(out, ACFValue{
			Lag:         lag,
			Correlation: values[lag],
			Significant: math.Abs(values[lag]) > threshold,
		})
	}
	return out
}

func hasCycleLength(cycles []Cycle, length int) bool {
	for _, c := range cycles {
		if c.Length == length {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
