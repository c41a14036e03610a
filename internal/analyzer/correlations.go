package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/stats"
	"github.com/blackwell-systems/moodwatch/internal/store"
)

const (
	minCorrelationEntries  = 5
	minMatchedDays         = 5
	minOptimalSleepDays    = 10
	minOptimalSleepBuckets = 3
)

// ActivityCorrelations computes same-day Pearson correlations between
// each activity type's daily duration (and intensity, when rated) and
// the daily mean mood, over the days where both were logged.
func (e *Engine) ActivityCorrelations(days int) (*ActivityCorrelationsResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	start, end := e.window(days)
	moods, err := e.source.MoodEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading mood entries: %w", err)
	}
	activities, err := e.source.ActivityEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading activity entries: %w", err)
	}

	if len(moods) < minCorrelationEntries || len(activities) < minCorrelationEntries {
		return &ActivityCorrelationsResult{
			Status:   StatusInsufficientData,
			Message:  "Not enough data to identify activity-mood correlations",
			Insights: []string{},
		}, nil
	}

	loc := end.Location()
	dailyMood := dailyMoodMeans(moods, loc)

	// Group activities by type, then aggregate per day.
	byType := make(map[string][]store.ActivityEntry)
	for _, a := range activities {
		byType[a.ActivityType] = append(byType[a.ActivityType], a)
	}
	types := make([]string, 0, len(byType))
	for name := range byType {
		types = append(types, name)
	}
	sort.Strings(types)

	var correlations []ActivityCorrelation
	for _, name := range types {
		type agg struct {
			duration     float64
			intensitySum float64
			intensityN   int
		}
		perDay := make(map[string]*agg)
		for _, a := range byType[name] {
			key := a.Timestamp.In(loc).Format("2006-01-02")
			entry := perDay[key]
			if entry == nil {
				entry = &agg{}
				perDay[key] = entry
			}
			if a.DurationMinutes != nil {
				entry.duration += float64(*a.DurationMinutes)
			}
			if a.Intensity != nil {
				entry.intensitySum += float64(*a.Intensity)
				entry.intensityN++
			}
		}

		// Inner join with the mood days, chronological.
		var keys []string
		for key := range perDay {
			if _, ok := dailyMood[key]; ok {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		if len(keys) < minMatchedDays {
			continue
		}

		moodCol := make([]float64, len(keys))
		durationCol := make([]float64, len(keys))
		intensityCol := make([]float64, len(keys))
		anyIntensity := false
		for i, key := range keys {
			moodCol[i] = dailyMood[key]
			durationCol[i] = perDay[key].duration
			if perDay[key].intensityN > 0 {
				intensityCol[i] = perDay[key].intensitySum / float64(perDay[key].intensityN)
				anyIntensity = true
			} else {
				intensityCol[i] = math.NaN()
			}
		}

		durationR, durationP, err := stats.Pearson(durationCol, moodCol)
		if err != nil {
			continue
		}

		corr := ActivityCorrelation{
			Activity:             name,
			DurationCorrelation:  durationR,
			DurationPValue:       durationP,
			DurationSignificance: durationP < 0.05,
			SampleSize:           len(keys),
		}

		if anyIntensity {
			fillMean(intensityCol)
			if r, p, err := stats.Pearson(intensityCol, moodCol); err == nil {
				significant := p < 0.05
				corr.IntensityCorrelation = &r
				corr.IntensityPValue = &p
				corr.IntensitySignificance = &significant
			}
		}

		correlations = append(correlations, corr)
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].DurationCorrelation) >
			math.Abs(correlations[j].DurationCorrelation)
	})

	insights := []string{}
	for _, corr := range correlations {
		if !corr.DurationSignificance {
			continue
		}
		switch {
		case corr.DurationCorrelation > insightCorrelation:
			insights = append(insights, fmt.Sprintf(
				"%s appears to have a positive effect on your mood.", corr.Activity))
		case corr.DurationCorrelation < -insightCorrelation:
			insights = append(insights, fmt.Sprintf(
				"%s appears to have a negative association with your mood.", corr.Activity))
		}
	}

	return &ActivityCorrelationsResult{
		Status:       StatusSuccess,
		Correlations: correlations,
		Insights:     insights,
	}, nil
}

// SleepCorrelations computes same-day Pearson correlations between
// sleep duration/quality and daily mean mood, and estimates the
// mood-maximizing sleep duration when enough matched days exist.
func (e *Engine) SleepCorrelations(days int) (*SleepCorrelationsResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	start, end := e.window(days)
	moods, err := e.source.MoodEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading mood entries: %w", err)
	}
	sleeps, err := e.source.SleepEntriesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("loading sleep entries: %w", err)
	}

	if len(moods) < minCorrelationEntries || len(sleeps) < minCorrelationEntries {
		return &SleepCorrelationsResult{
			Status:   StatusInsufficientData,
			Message:  "Not enough data to identify sleep-mood correlations",
			Insights: []string{},
		}, nil
	}

	loc := end.Location()
	dailyMood := dailyMoodMeans(moods, loc)

	type agg struct {
		durationSum float64
		durationN   int
		qualitySum  float64
		qualityN    int
	}
	perDay := make(map[string]*agg)
	for _, s := range sleeps {
		key := s.Timestamp.In(loc).Format("2006-01-02")
		entry := perDay[key]
		if entry == nil {
			entry = &agg{}
			perDay[key] = entry
		}
		entry.durationSum += s.DurationHours
		entry.durationN++
		if s.Quality != nil {
			entry.qualitySum += *s.Quality
			entry.qualityN++
		}
	}

	var keys []string
	for key := range perDay {
		if _, ok := dailyMood[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if len(keys) < minMatchedDays {
		return &SleepCorrelationsResult{
			Status:   StatusInsufficientData,
			Message:  "Not enough matching dates between sleep and mood data",
			Insights: []string{},
		}, nil
	}

	moodCol := make([]float64, len(keys))
	durationCol := make([]float64, len(keys))
	qualityCol := make([]float64, len(keys))
	anyQuality := false
	for i, key := range keys {
		moodCol[i] = dailyMood[key]
		durationCol[i] = perDay[key].durationSum / float64(perDay[key].durationN)
		if perDay[key].qualityN > 0 {
			qualityCol[i] = perDay[key].qualitySum / float64(perDay[key].qualityN)
			anyQuality = true
		} else {
			qualityCol[i] = math.NaN()
		}
	}

	durationR, durationP, err := stats.Pearson(durationCol, moodCol)
	if err != nil {
		return &SleepCorrelationsResult{
			Status:   StatusError,
			Message:  fmt.Sprintf("Error in sleep correlation analysis: %v", err),
			Insights: []string{},
		}, nil
	}

	res := &SleepCorrelationsResult{
		Status: StatusSuccess,
		Duration: &CorrelationStat{
			Correlation: durationR,
			PValue:      durationP,
			Significant: durationP < 0.05,
		},
		Insights: []string{},
	}

	if anyQuality {
		fillMean(qualityCol)
		if r, p, err := stats.Pearson(qualityCol, moodCol); err == nil {
			res.Quality = &CorrelationStat{
				Correlation: r,
				PValue:      p,
				Significant: p < 0.05,
			}
		}
	}

	if len(keys) >= minOptimalSleepDays {
		res.OptimalSleepDuration = optimalSleepDuration(durationCol, moodCol)
	}

	if res.Duration.Significant {
		switch {
		case durationR > insightCorrelation:
			res.Insights = append(res.Insights, "More sleep appears to positively affect your mood.")
		case durationR < -insightCorrelation:
			res.Insights = append(res.Insights,
				"Longer sleep duration appears to negatively affect your mood, which is unusual. Consider other factors like sleep quality or oversleeping.")
		}
	}
	if res.Quality != nil && res.Quality.Significant && res.Quality.Correlation > insightCorrelation {
		res.Insights = append(res.Insights, "Better sleep quality is associated with improved mood.")
	}
	if res.OptimalSleepDuration != nil {
		res.Insights = append(res.Insights, fmt.Sprintf(
			"Your mood tends to be best when you sleep around %g hours.", *res.OptimalSleepDuration))
	}

	return res, nil
}

// optimalSleepDuration buckets durations to the nearest half hour and
// returns the bucket with the highest mean mood, requiring at least
// three distinct buckets. Ties go to the shortest duration.
func optimalSleepDuration(durations, moodCol []float64) *float64 {
	sums := make(map[float64]float64)
	counts := make(map[float64]int)
	for i, d := range durations {
		bucket := math.Round(d*2) / 2
		sums[bucket] += moodCol[i]
		counts[bucket]++
	}
	if len(counts) < minOptimalSleepBuckets {
		return nil
	}

	buckets := make([]float64, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}
	sort.Float64s(buckets)

	best := buckets[0]
	bestMean := sums[best] / float64(counts[best])
	for _, bucket := range buckets[1:] {
		mean := sums[bucket] / float64(counts[bucket])
		if mean > bestMean {
			best = bucket
			bestMean = mean
		}
	}
	return &best
}

// dailyMoodMeans maps calendar-day keys to the day's mean mood level.
func dailyMoodMeans(moods []store.MoodEntry, loc *time.Location) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range moods {
		key := m.Timestamp.In(loc).Format("2006-01-02")
		sums[key] += m.MoodLevel
		counts[key]++
	}
	means := make(map[string]float64, len(sums))
	for key, sum := range sums {
		means[key] = sum / float64(counts[key])
	}
	return means
}
