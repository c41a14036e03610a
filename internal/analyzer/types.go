// Package analyzer implements the temporal analytics engine: it converts
// the irregular mood, activity, and sleep event streams into a regular
// daily time series and runs statistical analyses over it to surface
// patterns, lagged relationships, causality candidates, multivariate
// structure, cycles, and behavioral clusters.
package analyzer

// Analysis outcome statuses. Callers must branch on Status before
// reading a result's payload fields.
const (
	StatusSuccess          = "success"
	StatusInsufficientData = "insufficient_data"
	StatusError            = "error"
)

// TimeOfDayPattern holds mean mood per hour band. A nil band mean
// means no entries fell into that band.
type TimeOfDayPattern struct {
	Morning   *float64 `json:"morning"`
	Afternoon *float64 `json:"afternoon"`
	Evening   *float64 `json:"evening"`

	// BestTime is "morning", "afternoon", or "evening" when one band
	// beats every other populated band by more than the configured
	// margin, otherwise empty.
	BestTime string `json:"best_time,omitempty"`
}

// DayOfWeekPattern compares weekday and weekend mood.
type DayOfWeekPattern struct {
	Weekday *float64 `json:"weekday"`
	Weekend *float64 `json:"weekend"`

	// BetterPeriod is "weekdays", "weekends", or "similar".
	BetterPeriod string `json:"better_period"`
}

// TrendAnalysis holds linear trend fits over the mood series.
type TrendAnalysis struct {
	// OverallTrend is the OLS slope of mood against entry index.
	OverallTrend float64 `json:"overall_trend"`

	// Direction is "improving", "declining", or "stable".
	Direction string `json:"direction"`

	// WeeklyTrend is the slope over means of consecutive 7-entry
	// blocks, present with at least 14 entries.
	WeeklyTrend     *float64 `json:"weekly_trend,omitempty"`
	WeeklyDirection string   `json:"weekly_direction,omitempty"`
}

// PatternsResult is the output of MoodPatterns.
type PatternsResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	TimeOfDay     *TimeOfDayPattern `json:"time_of_day,omitempty"`
	DayOfWeek     *DayOfWeekPattern `json:"day_of_week,omitempty"`
	TrendAnalysis *TrendAnalysis    `json:"trend_analysis,omitempty"`

	Insights []string `json:"insights"`
}

// LagCorrelation is the correlation of mood with a predictor value
// from Lag days earlier.
type LagCorrelation struct {
	Lag         int     `json:"lag"`
	Correlation float64 `json:"correlation"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// LagResult holds the per-lag correlations for one predictor.
type LagResult struct {
	Variable        string           `json:"variable"`
	LagCorrelations []LagCorrelation `json:"lag_correlations"`

	// StrongestLag is the lag with the largest absolute correlation.
	StrongestLag LagCorrelation `json:"strongest_lag"`
}

// LagsResult is the output of LaggedCorrelations, sorted by absolute
// strongest-lag correlation descending.
type LagsResult struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	LagResults []LagResult `json:"lag_results"`
	Insights   []string    `json:"insights"`
}

// PValueAtLag is one causality test outcome at a specific lag order.
type PValueAtLag struct {
	Lag         int     `json:"lag"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// CausalityResult holds one direction of a Granger-style test for one
// predictor.
type CausalityResult struct {
	Variable string `json:"variable"`

	// Direction is "<variable> -> mood" or "mood -> <variable>".
	Direction string `json:"direction"`

	PValues []PValueAtLag `json:"p_values"`

	// MostSignificantLag is the qualifying lag with the smallest
	// p-value, present only when HasCausality is true.
	MostSignificantLag *PValueAtLag `json:"most_significant_lag,omitempty"`
	HasCausality       bool         `json:"has_causality"`
}

// CausalitiesResult is the output of GrangerCausality, filtered to
// causal pairs and sorted by most-significant p-value ascending.
type CausalitiesResult struct {
	Status           string            `json:"status"`
	Message          string            `json:"message,omitempty"`
	CausalityResults []CausalityResult `json:"causality_results"`
	Insights         []string          `json:"insights"`
}

// MoodRelatedVariable is a predictor loading on the mood component.
type MoodRelatedVariable struct {
	Variable string  `json:"variable"`
	Loading  float64 `json:"loading"`

	// Relationship is "positive" or "negative", from the sign product
	// of the predictor's loading and mood's loading.
	Relationship string `json:"relationship"`
}

// PCAAnalysis holds the principal component decomposition results.
type PCAAnalysis struct {
	Error string `json:"error,omitempty"`

	ExplainedVariance []float64 `json:"explained_variance,omitempty"`

	// MoodPrincipalComponent is the 1-based index of the component on
	// which mood loads most heavily.
	MoodPrincipalComponent int                   `json:"mood_principal_component,omitempty"`
	MoodRelatedVariables   []MoodRelatedVariable `json:"mood_related_variables,omitempty"`
}

// VARGrangerResult is one significant causality test from the VAR model.
type VARGrangerResult struct {
	Variable      string  `json:"variable"`
	Direction     string  `json:"direction"`
	PValue        float64 `json:"p_value"`
	TestStatistic float64 `json:"test_statistic"`
	Significant   bool    `json:"significant"`
}

// VARAnalysis holds the vector autoregression cross-check results.
type VARAnalysis struct {
	Error string `json:"error,omitempty"`

	ModelOrder       int                `json:"model_order,omitempty"`
	GrangerCausality []VARGrangerResult `json:"granger_causality,omitempty"`
}

// MultivariateResult is the output of Multivariate.
type MultivariateResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	PCAAnalysis *PCAAnalysis `json:"pca_analysis,omitempty"`
	VARAnalysis *VARAnalysis `json:"var_analysis,omitempty"`

	Insights []string `json:"insights"`
}

// ACFValue is the (partial) autocorrelation of the daily mood series
// at one lag.
type ACFValue struct {
	Lag         int     `json:"lag"`
	Correlation float64 `json:"correlation"`
	Significant bool    `json:"significant"`
}

// Cycle is a detected periodicity in the daily mood series.
type Cycle struct {
	Length   int     `json:"length"`
	Strength float64 `json:"strength"`

	// Type is "primary", "secondary", or "weekly".
	Type string `json:"type"`
}

// CyclesResult is the output of MoodCycles.
type CyclesResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	Autocorrelation        []ACFValue `json:"autocorrelation,omitempty"`
	PartialAutocorrelation []ACFValue `json:"partial_autocorrelation,omitempty"`
	Cycles                 []Cycle    `json:"cycles"`

	Insights []string `json:"insights"`
}

// ClusterStats summarizes one behavioral cluster of mood entries.
type ClusterStats struct {
	ClusterID  int     `json:"cluster_id"`
	Size       int     `json:"size"`
	Percentage float64 `json:"percentage"`
	AvgMood    float64 `json:"avg_mood"`

	// MoodCategory is "positive" (>=7), "negative" (<=4), or "neutral".
	MoodCategory string `json:"mood_category"`

	// TimeOfDay labels the cluster's mean entry hour.
	TimeOfDay string `json:"time_of_day"`

	// MostCommonDay is the weekday with the most member entries.
	MostCommonDay string `json:"most_common_day"`

	// CommonEmotions lists the top three emotions among members.
	CommonEmotions []string `json:"common_emotions"`
}

// ClustersResult is the output of MoodClusters.
type ClustersResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	OptimalClusters int            `json:"optimal_clusters,omitempty"`
	ClusterStats    []ClusterStats `json:"cluster_stats,omitempty"`

	Insights []string `json:"insights"`
}

// CorrelationStat is one same-day Pearson correlation against daily
// mean mood.
type CorrelationStat struct {
	Correlation float64 `json:"correlation"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// ActivityCorrelation holds same-day correlations for one activity type.
type ActivityCorrelation struct {
	Activity string `json:"activity"`

	DurationCorrelation  float64 `json:"duration_correlation"`
	DurationPValue       float64 `json:"duration_p_value"`
	DurationSignificance bool    `json:"duration_significance"`

	IntensityCorrelation  *float64 `json:"intensity_correlation"`
	IntensityPValue       *float64 `json:"intensity_p_value"`
	IntensitySignificance *bool    `json:"intensity_significance"`

	SampleSize int `json:"sample_size"`
}

// ActivityCorrelationsResult is the output of ActivityCorrelations,
// sorted by absolute duration correlation descending.
type ActivityCorrelationsResult struct {
	Status       string                `json:"status"`
	Message      string                `json:"message,omitempty"`
	Correlations []ActivityCorrelation `json:"correlations"`
	Insights     []string              `json:"insights"`
}

// SleepCorrelationsResult is the output of SleepCorrelations.
type SleepCorrelationsResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`

	Duration *CorrelationStat `json:"duration,omitempty"`
	Quality  *CorrelationStat `json:"quality,omitempty"`

	// OptimalSleepDuration is the half-hour duration bucket with the
	// highest mean mood, when enough matched days exist.
	OptimalSleepDuration *float64 `json:"optimal_sleep_duration,omitempty"`

	Insights []string `json:"insights"`
}

// ComprehensiveResult bundles every analysis over one window, with the
// combined and curated insight lists.
type ComprehensiveResult struct {
	Status string `json:"status"`

	MoodPatterns              *PatternsResult     `json:"mood_patterns"`
	LaggedCorrelations        *LagsResult         `json:"lagged_correlations"`
	GrangerCausality          *CausalitiesResult  `json:"granger_causality"`
	MultivariateRelationships *MultivariateResult `json:"multivariate_relationships"`
	MoodCycles                *CyclesResult       `json:"mood_cycles"`
	MoodClusters              *ClustersResult     `json:"mood_clusters"`

	AllInsights []string `json:"all_insights"`
	KeyInsights []string `json:"key_insights"`
}
