package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/config"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/blackwell-systems/moodwatch/internal/store"
)

// session bundles the loaded config, the open event log and an engine
// over it, shared by every command.
type session struct {
	cfg *config.Config
	db  *store.DB
	eng *analyzer.Engine
}

func openSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(flagNoColor, cfg.Output.Color)

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if flagVerbose {
		fmt.Fprintln(os.Stderr, "database:", cfg.DBPath())
	}

	return &session{
		cfg: cfg,
		db:  db,
		eng: analyzer.New(db, cfg.Analysis.AnalyzerConfig()),
	}, nil
}

func (s *session) Close() {
	_ = s.db.Close()
}

// days resolves the --days flag against the configured default.
func (s *session) days(flagDays int) int {
	if flagDays > 0 {
		return flagDays
	}
	return s.cfg.Analysis.DefaultDays
}

// maxLag resolves the --max-lag flag against the configured default.
func (s *session) maxLag(flagMaxLag int) int {
	if flagMaxLag > 0 {
		return flagMaxLag
	}
	return s.cfg.Analysis.DefaultMaxLag
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseWhen parses user-supplied timestamps in a few common layouts.
// An empty value means now.
func parseWhen(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (try 2006-01-02 15:04)", raw)
}

// optFloat renders an optional float for table cells.
func optFloat(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *p)
}
