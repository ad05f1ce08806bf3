package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
	"github.com/JonnyWalker81/moodtrail/backend/internal/config"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analytics engine over an exported record file",
	Long: `Read a JSON export of mood entries, journal entries and activities and
print the overview report for one period. Nothing is read from or written to
the database.`,
	RunE: runAnalyze,
}

var analyzeOpts struct {
	input  string
	period string
	format string
	today  string
	topN   int
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeOpts.input, "input", "i", "-", "Export file, - for stdin")
	f.StringVar(&analyzeOpts.period, "period", string(analytics.DefaultPeriod), "week, month, quarter or year")
	f.StringVarP(&analyzeOpts.format, "format", "f", "yaml", "Output format: yaml or json")
	f.StringVar(&analyzeOpts.today, "today", "", "Reference date (YYYY-MM-DD), defaults to now")
	f.IntVar(&analyzeOpts.topN, "top", 0, "Ranking size (defaults to analytics.top_n)")
}

// export is the file layout analyze reads
type export struct {
	Moods      []models.MoodEntry    `json:"moods"`
	Journals   []models.JournalEntry `json:"journals"`
	Activities []models.Activity     `json:"activities"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadUnvalidated(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	now := time.Now()
	if analyzeOpts.today != "" {
		now, err = time.Parse("2006-01-02", analyzeOpts.today)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		// count the whole reference day as elapsed
		now = now.Add(24*time.Hour - time.Nanosecond)
	}

	topN := analyzeOpts.topN
	if topN <= 0 {
		topN = cfg.Analytics.TopN
	}

	in := cmd.InOrStdin()
	if analyzeOpts.input != "-" {
		f, err := os.Open(analyzeOpts.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return analyze(in, cmd.OutOrStdout(), analyzeOpts.period, analyzeOpts.format, now, topN)
}

// analyze decodes an export, restricts it to the period ending at now and
// writes the overview
func analyze(r io.Reader, w io.Writer, period, format string, now time.Time, topN int) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
	rng, err := analytics.ResolvePeriod(period, now)
	if err != nil {
		return err
	}

	var data export
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode export: %w", err)
	}

	window := models.DateRange{Start: rng.Start, End: rng.End}
	history := models.DateRange{Start: now.AddDate(-1, 0, 0), End: now}
	overview := analytics.BuildOverview(analytics.OverviewInput{
		Moods:             within(data.Moods, window),
		Journals:          within(data.Journals, window),
		Activities:        data.Activities,
		WritingHistory:    within(data.Journals, history),
		HasJournalHistory: len(data.Journals) > 0,
		Today:             now,
		TopN:              topN,
	})

	report := struct {
		Period   analytics.Range    `json:"period"`
		Overview analytics.Overview `json:"overview"`
	}{rng, overview}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeYAML(w, report)
}

// writeYAML round-trips through JSON so the YAML keys match the API's
// snake_case field names
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func within[T models.Record](items []T, r models.DateRange) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(item.RecordedAt()) {
			out = append(out, item)
		}
	}
	return out
}
