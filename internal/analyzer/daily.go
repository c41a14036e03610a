package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/stats"
	"github.com/blackwell-systems/moodwatch/internal/store"
)

// series is one named daily predictor column.
type series struct {
	name   string
	values []float64
}

// dailyTable is the regularized daily view of the event streams:
// exactly one row per calendar day in the window, no gaps, with the
// missing-value policy already applied. It is rebuilt per analysis
// call and never persisted.
type dailyTable struct {
	dates []time.Time

	// Mood columns. hasMood is false when no mood event fell inside
	// the window, in which case every downstream analysis reports
	// insufficient data.
	mood    []float64
	moodMin []float64
	moodMax []float64
	moodStd []float64
	hasMood bool

	// predictors are the non-mood columns: one duration and one
	// intensity series per activity type (sorted by type name), then
	// sleep_duration and sleep_quality when observed.
	predictors []series
}

func (t *dailyTable) rows() int {
	return len(t.dates)
}

// eligiblePredictors drops all-zero columns: zero activity of a type
// across the whole window is uninformative.
func (t *dailyTable) eligiblePredictors() []series {
	var eligible []series
	for _, s := range t.predictors {
		if stats.Sum(s.values) != 0 {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// buildDailyTable aggregates the three event streams into one row per
// calendar day spanning [now-days, now], days+1 rows total. Fill
// policy, in order: mood mean forward-fill then backward-fill (min,
// max, and std fall back to 0); activity columns fill with 0, since
// absence of activity is a real zero; sleep columns forward-fill,
// backward-fill, then the column mean.
func buildDailyTable(moods []store.MoodEntry, activities []store.ActivityEntry, sleeps []store.SleepEntry, now time.Time, days int) *dailyTable {
	loc := now.Location()
	n := days + 1

	startDay := dateOf(now.AddDate(0, 0, -days), loc)
	t := &dailyTable{dates: make([]time.Time, n)}

	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		d := startDay.AddDate(0, 0, i)
		t.dates[i] = d
		index[d.Format("2006-01-02")] = i
	}

	dayOf := func(ts time.Time) (int, bool) {
		i, ok := index[ts.In(loc).Format("2006-01-02")]
		return i, ok
	}

	// Mood: per-day mean/min/max/population std.
	moodByDay := make([][]float64, n)
	for _, m := range moods {
		if i, ok := dayOf(m.Timestamp); ok {
			moodByDay[i] = append(moodByDay[i], m.MoodLevel)
		}
	}

	t.mood = nanColumn(n)
	t.moodMin = nanColumn(n)
	t.moodMax = nanColumn(n)
	t.moodStd = nanColumn(n)
	for i, vals := range moodByDay {
		if len(vals) == 0 {
			continue
		}
		t.hasMood = true
		t.mood[i] = stats.Mean(vals)
		mn, mx := stats.MinMax(vals)
		t.moodMin[i] = mn
		t.moodMax[i] = mx
		if len(vals) >= 2 {
			t.moodStd[i] = stats.PopStd(vals)
		} else {
			t.moodStd[i] = 0
		}
	}

	if t.hasMood {
		ffill(t.mood)
		bfill(t.mood)
		for _, col := range [][]float64{t.moodMin, t.moodMax, t.moodStd} {
			ffill(col)
			bfill(col)
			fillConst(col, 0)
		}
	}

	// Activities: per-type daily duration sum and intensity mean,
	// zero-filled.
	type dayAgg struct {
		duration     float64
		intensitySum float64
		intensityN   int
	}
	byType := make(map[string]map[int]*dayAgg)
	for _, a := range activities {
		i, ok := dayOf(a.Timestamp)
		if !ok {
			continue
		}
		perDay := byType[a.ActivityType]
		if perDay == nil {
			perDay = make(map[int]*dayAgg)
			byType[a.ActivityType] = perDay
		}
		agg := perDay[i]
		if agg == nil {
			agg = &dayAgg{}
			perDay[i] = agg
		}
		if a.DurationMinutes != nil {
			agg.duration += float64(*a.DurationMinutes)
		}
		if a.Intensity != nil {
			agg.intensitySum += float64(*a.Intensity)
			agg.intensityN++
		}
	}

	types := make([]string, 0, len(byType))
	for name := range byType {
		types = append(types, name)
	}
	sort.Strings(types)

	for _, name := range types {
		duration := make([]float64, n)
		intensity := make([]float64, n)
		for i, agg := range byType[name] {
			duration[i] = agg.duration
			if agg.intensityN > 0 {
				intensity[i] = agg.intensitySum / float64(agg.intensityN)
			}
		}
		t.predictors = append(t.predictors,
			series{name: name + "_duration", values: duration},
			series{name: name + "_intensity", values: intensity},
		)
	}

	// Sleep: daily mean duration and quality. A day with sleep but no
	// quality rating gets the mean of the rated days before the range
	// fill runs.
	if len(sleeps) > 0 {
		duration := nanColumn(n)
		quality := nanColumn(n)
		durSum := make([]float64, n)
		durN := make([]int, n)
		qualSum := make([]float64, n)
		qualN := make([]int, n)
		sleepDays := make([]bool, n)

		anySleep := false
		anyQuality := false
		for _, s := range sleeps {
			i, ok := dayOf(s.Timestamp)
			if !ok {
				continue
			}
			anySleep = true
			sleepDays[i] = true
			durSum[i] += s.DurationHours
			durN[i]++
			if s.Quality != nil {
				anyQuality = true
				qualSum[i] += *s.Quality
				qualN[i]++
			}
		}

		if anySleep {
			var qualityMeans []float64
			for i := 0; i < n; i++ {
				if durN[i] > 0 {
					duration[i] = durSum[i] / float64(durN[i])
				}
				if qualN[i] > 0 {
					quality[i] = qualSum[i] / float64(qualN[i])
					qualityMeans = append(qualityMeans, quality[i])
				}
			}
			if anyQuality {
				dayMean := stats.Mean(qualityMeans)
				for i := 0; i < n; i++ {
					if sleepDays[i] && qualN[i] == 0 {
						quality[i] = dayMean
					}
				}
			}

			ffill(duration)
			bfill(duration)
			fillMean(duration)
			t.predictors = append(t.predictors, series{name: "sleep_duration", values: duration})

			if anyQuality {
				ffill(quality)
				bfill(quality)
				fillMean(quality)
				t.predictors = append(t.predictors, series{name: "sleep_quality", values: quality})
			}
		}
	}

	return t
}

// dateOf truncates a timestamp to midnight of its calendar day.
func dateOf(ts time.Time, loc *time.Location) time.Time {
	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func nanColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = math.NaN()
	}
	return col
}

// ffill carries the last observed value forward over NaN gaps.
func ffill(xs []float64) {
	last := math.NaN()
	for i, x := range xs {
		if math.IsNaN(x) {
			xs[i] = last
		} else {
			last = x
		}
	}
}

// bfill carries the next observed value backward over leading NaN gaps.
func bfill(xs []float64) {
	next := math.NaN()
	for i := len(xs) - 1; i >= 0; i-- {
		if math.IsNaN(xs[i]) {
			xs[i] = next
		} else {
			next = xs[i]
		}
	}
}

// fillConst replaces remaining NaN values with v.
func fillConst(xs []float64, v float64) {
	for i, x := range xs {
		if math.IsNaN(x) {
			xs[i] = v
		}
	}
}

// fillMean replaces remaining NaN values with the mean of the observed
// values.
func fillMean(xs []float64) {
	var sum float64
	var count int
	for _, x := range xs {
		if !math.IsNaN(x) {
			sum += x
			count++
		}
	}
	if count == 0 {
		return
	}
	mean := sum / float64(count)
	fillConst(xs, mean)
}
