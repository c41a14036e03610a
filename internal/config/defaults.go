// Package config provides configuration loading and defaults for moodwatch.
package config

// DefaultConfigDir is the default location for moodwatch configuration
// and the event database.
const DefaultConfigDir = "~/.config/moodwatch"

// DefaultDBName is the filename for the SQLite event log.
const DefaultDBName = "moodwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultAnalysis holds the default analysis window and thresholds.
var DefaultAnalysis = Analysis{
	DefaultDays:      90,
	DefaultMaxLag:    7,
	TimeOfDayMargin:  0.5,
	PeriodMargin:     0.5,
	CorrelationFloor: 0.2,
	ClusterSeed:      42,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
