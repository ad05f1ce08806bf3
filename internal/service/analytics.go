package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/moodtrail/backend/internal/analytics"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
)

// TrendReport is one metric's daily series over a period
type TrendReport struct {
	Metric analytics.Metric `json:"metric"`
	Period analytics.Period `json:"period"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Series analytics.Series `json:"series"`
	Stats  analytics.Stats  `json:"stats"`
}

// StreakSummary pairs the running streak with the best one on record
type StreakSummary struct {
	Current int                 `json:"current"`
	Longest analytics.StreakRun `json:"longest"`
}

type StreakReport struct {
	Mood    StreakSummary `json:"mood"`
	Writing StreakSummary `json:"writing"`
}

// trendMetrics are the metrics the trends endpoint charts, with the record
// kind each is read from
var trendMetrics = map[analytics.Metric]models.RecordKind{
	analytics.MetricMood:         models.RecordKindMood,
	analytics.MetricEnergy:       models.RecordKindMood,
	analytics.MetricStress:       models.RecordKindMood,
	analytics.MetricAnxiety:      models.RecordKindMood,
	analytics.MetricSleepHours:   models.RecordKindMood,
	analytics.MetricSleepQuality: models.RecordKindMood,
	analytics.MetricWordCount:    models.RecordKindJournal,
	analytics.MetricReadingTime:  models.RecordKindJournal,
}

// TrendMetrics lists the chartable metric names, sorted
func TrendMetrics() []string {
	names := make([]string, 0, len(trendMetrics))
	for m := range trendMetrics {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

type analyticsService struct {
	moodRepo     repository.MoodRepository
	journalRepo  repository.JournalRepository
	activityRepo repository.ActivityRepository
	topN         int
	now          func() time.Time
}

func NewAnalyticsService(
	moodRepo repository.MoodRepository,
	journalRepo repository.JournalRepository,
	activityRepo repository.ActivityRepository,
	topN int,
) AnalyticsService {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &analyticsService{
		moodRepo:     moodRepo,
		journalRepo:  journalRepo,
		activityRepo: activityRepo,
		topN:         topN,
		now:          time.Now,
	}
}

// what a request needs loaded
type loadSet struct {
	moods, journals, activities, history bool
}

// snapshot is the record set one analytics request works on
type snapshot struct {
	moods        []models.MoodEntry
	journals     []models.JournalEntry
	activities   []models.Activity
	history      []models.JournalEntry
	journalCount int
}

// load fetches the requested record sets concurrently. The first failure
// cancels the remaining queries.
func (s *analyticsService) load(ctx context.Context, userID string, r analytics.Range, want loadSet) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	if want.moods {
		g.Go(func() error {
			moods, err := s.moodRepo.ListByDateRange(gctx, userID, r.Start, r.End)
			if err != nil {
				return fmt.Errorf("failed to load mood entries: %w", err)
			}
			snap.moods = moods
			return nil
		})
	}
	if want.journals {
		g.Go(func() error {
			journals, err := s.journalRepo.ListByDateRange(gctx, userID, r.Start, r.End)
			if err != nil {
				return fmt.Errorf("failed to load journal entries: %w", err)
			}
			snap.journals = journals
			return nil
		})
	}
	if want.activities {
		g.Go(func() error {
			activities, err := s.activityRepo.List(gctx, userID, false)
			if err != nil {
				return fmt.Errorf("failed to load activities: %w", err)
			}
			snap.activities = activities
			return nil
		})
	}
	if want.history {
		// streaks can run past the start of the period
		g.Go(func() error {
			history, err := s.journalRepo.ListByDateRange(gctx, userID, r.End.AddDate(-1, 0, 0), r.End)
			if err != nil {
				return fmt.Errorf("failed to load writing history: %w", err)
			}
			snap.history = history
			return nil
		})
		g.Go(func() error {
			n, err := s.journalRepo.Count(gctx, userID)
			if err != nil {
				return fmt.Errorf("failed to count journal entries: %w", err)
			}
			snap.journalCount = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *analyticsService) resolve(period string) (analytics.Range, time.Time, error) {
	now := s.now()
	r, err := analytics.ResolvePeriod(period, now)
	if err != nil {
		return analytics.Range{}, now, err
	}
	return r, now, nil
}

func (s *analyticsService) Overview(ctx context.Context, userID, period string) (*analytics.Overview, error) {
	r, now, err := s.resolve(period)
	if err != nil {
		return nil, err
	}
	started := time.Now()

	snap, err := s.load(ctx, userID, r, loadSet{moods: true, journals: true, activities: true, history: true})
	if err != nil {
		return nil, err
	}

	overview := analytics.BuildOverview(analytics.OverviewInput{
		Moods:             snap.moods,
		Journals:          snap.journals,
		Activities:        snap.activities,
		WritingHistory:    snap.history,
		HasJournalHistory: snap.journalCount > 0,
		Today:             now,
		TopN:              s.topN,
	})

	logger.Ctx(ctx).Debug("overview computed",
		logger.String("period", string(r.Period)),
		logger.Int("mood_entries", len(snap.moods)),
		logger.Int("journal_entries", len(snap.journals)),
		logger.Int("activities", len(snap.activities)),
		logger.Duration("elapsed", time.Since(started)))
	return &overview, nil
}

func (s *analyticsService) MoodReport(ctx context.Context, userID, period string) (*analytics.MoodReport, error) {
	r, now, err := s.resolve(period)
	if err != nil {
		return nil, err
	}
	snap, err := s.load(ctx, userID, r, loadSet{moods: true, activities: true})
	if err != nil {
		return nil, err
	}
	report := analytics.BuildMoodReport(snap.moods, snap.activities, now, s.topN)
	return &report, nil
}

func (s *analyticsService) JournalReport(ctx context.Context, userID, period string) (*analytics.JournalReport, error) {
	r, now, err := s.resolve(period)
	if err != nil {
		return nil, err
	}
	snap, err := s.load(ctx, userID, r, loadSet{journals: true, history: true})
	if err != nil {
		return nil, err
	}
	report := analytics.BuildJournalReport(snap.journals, snap.history, now, s.topN)
	return &report, nil
}

func (s *analyticsService) ActivityReport(ctx context.Context, userID string) (*analytics.ActivityReport, error) {
	snap, err := s.load(ctx, userID, analytics.Range{}, loadSet{activities: true})
	if err != nil {
		return nil, err
	}
	report := analytics.BuildActivityReport(snap.activities, s.topN)
	return &report, nil
}

func (s *analyticsService) Trend(ctx context.Context, userID, period, metric string) (*TrendReport, error) {
	m := analytics.Metric(metric)
	if metric == "" {
		m = analytics.MetricMood
	}
	kind, ok := trendMetrics[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, metric)
	}

	r, _, err := s.resolve(period)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if kind == models.RecordKindMood {
		snap, err := s.load(ctx, userID, r, loadSet{moods: true})
		if err != nil {
			return nil, err
		}
		records = analytics.AsRecords(snap.moods)
	} else {
		snap, err := s.load(ctx, userID, r, loadSet{journals: true})
		if err != nil {
			return nil, err
		}
		records = analytics.AsRecords(snap.journals)
	}

	series := analytics.DailySeries(records, m)
	return &TrendReport{
		Metric: m,
		Period: r.Period,
		Start:  r.Start,
		End:    r.End,
		Series: series,
		Stats:  analytics.SummarizeSeries(series),
	}, nil
}

func (s *analyticsService) Streaks(ctx context.Context, userID string) (*StreakReport, error) {
	now := s.now()
	year := analytics.Range{Period: analytics.PeriodYear, Start: now.AddDate(-1, 0, 0), End: now}

	snap, err := s.load(ctx, userID, year, loadSet{moods: true, journals: true})
	if err != nil {
		return nil, err
	}

	moods := analytics.AsRecords(snap.moods)
	journals := analytics.AsRecords(snap.journals)
	return &StreakReport{
		Mood: StreakSummary{
			Current: analytics.RecordStreak(moods, now),
			Longest: analytics.LongestRecordStreak(moods),
		},
		Writing: StreakSummary{
			Current: analytics.RecordStreak(journals, now),
			Longest: analytics.LongestRecordStreak(journals),
		},
	}, nil
}

func (s *analyticsService) Insights(ctx context.Context, userID, period string) (*analytics.InsightReport, error) {
	overview, err := s.Overview(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	return &overview.Insights, nil
}
