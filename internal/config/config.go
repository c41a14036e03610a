package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
)

// Config is the top-level moodwatch configuration.
type Config struct {
	// DataDir overrides the directory holding the event database.
	DataDir string `mapstructure:"data_dir"`

	Analysis Analysis `mapstructure:"analysis"`
	Output   Output   `mapstructure:"output"`
}

// Analysis defines the default analysis window and the thresholds the
// analyses use.
type Analysis struct {
	// DefaultDays is the lookback window when --days is not given.
	DefaultDays int `mapstructure:"default_days"`

	// DefaultMaxLag is the maximum lag in days for lagged-correlation
	// and causality analyses when --max-lag is not given.
	DefaultMaxLag int `mapstructure:"default_max_lag"`

	// TimeOfDayMargin is how much a time band's mean mood must beat
	// every other band to be called the best time of day.
	TimeOfDayMargin float64 `mapstructure:"time_of_day_margin"`

	// PeriodMargin is the weekend-vs-weekday mean gap needed to call
	// one period better.
	PeriodMargin float64 `mapstructure:"period_margin"`

	// CorrelationFloor is the minimum absolute strongest-lag
	// correlation for a predictor to be reported.
	CorrelationFloor float64 `mapstructure:"correlation_floor"`

	// ClusterSeed seeds the clustering so repeated runs agree.
	ClusterSeed int64 `mapstructure:"cluster_seed"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// AnalyzerConfig maps the analysis settings onto the analyzer's own
// configuration type.
func (a Analysis) AnalyzerConfig() analyzer.Config {
	return analyzer.Config{
		TimeOfDayMargin:  a.TimeOfDayMargin,
		PeriodMargin:     a.PeriodMargin,
		CorrelationFloor: a.CorrelationFloor,
		ClusterSeed:      a.ClusterSeed,
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("analysis.default_days", DefaultAnalysis.DefaultDays)
	v.SetDefault("analysis.default_max_lag", DefaultAnalysis.DefaultMaxLag)
	v.SetDefault("analysis.time_of_day_margin", DefaultAnalysis.TimeOfDayMargin)
	v.SetDefault("analysis.period_margin", DefaultAnalysis.PeriodMargin)
	v.SetDefault("analysis.correlation_floor", DefaultAnalysis.CorrelationFloor)
	v.SetDefault("analysis.cluster_seed", DefaultAnalysis.ClusterSeed)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite event log for the loaded
// configuration.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded default configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
