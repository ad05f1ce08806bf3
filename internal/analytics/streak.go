package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

const day = 24 * time.Hour

// CurrentStreak walks dates newest-first from today and counts how many steps
// continue an unbroken run of consecutive days. The first step may land on
// today or yesterday; after that each date must fall exactly one day before
// the previously counted one. The walk stops at the first date that does not
// fit.
//
// The cursor advances once per date, not once per distinct day, so a second
// date on an already counted day ends the walk. Mood entries are unique per
// day upstream; journal entries are not.
func CurrentStreak(dates []time.Time, today time.Time) int {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	streak := 0
	cursor := StartOfDay(today)
	for _, d := range sorted {
		entry := StartOfDay(d)
		diff := daysBetween(cursor, entry)

		if (streak == 0 && diff <= 1) || (streak > 0 && diff == 1) {
			streak++
			cursor = entry
			continue
		}
		break
	}
	return streak
}

// RecordStreak is CurrentStreak over the record dates
func RecordStreak(records []models.Record, today time.Time) int {
	return CurrentStreak(recordDates(records), today)
}

// StreakRun is a run of consecutive calendar days
type StreakRun struct {
	Length int        `json:"length"`
	Start  *time.Time `json:"start_date,omitempty"`
	End    *time.Time `json:"end_date,omitempty"`
}

// LongestStreak finds the longest run of consecutive distinct calendar days
// anywhere in dates. Ties keep the earliest run.
func LongestStreak(dates []time.Time) StreakRun {
	seen := make(map[string]time.Time)
	for _, d := range dates {
		key := DayKey(d)
		if _, ok := seen[key]; !ok {
			seen[key] = StartOfDay(d)
		}
	}
	if len(seen) == 0 {
		return StreakRun{}
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	bestStart, bestEnd, bestLen := days[0], days[0], 1
	runStart, runLen := days[0], 1
	for i := 1; i < len(days); i++ {
		if isNextDay(days[i-1], days[i]) {
			runLen++
		} else {
			runStart, runLen = days[i], 1
		}
		if runLen > bestLen {
			bestStart, bestEnd, bestLen = runStart, days[i], runLen
		}
	}

	return StreakRun{Length: bestLen, Start: &bestStart, End: &bestEnd}
}

// LongestRecordStreak is LongestStreak over the record dates
func LongestRecordStreak(records []models.Record) StreakRun {
	return LongestStreak(recordDates(records))
}

// daysBetween is ceil((later - earlier) / 24h) for two midnights, computed on
// the calendar so a 23h or 25h DST day still counts as one
func daysBetween(later, earlier time.Time) int {
	ly, lm, ld := later.Date()
	ey, em, ed := earlier.Date()
	l := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(math.Round(float64(l.Sub(e)) / float64(day)))
}

// isNextDay compares calendar dates so DST-shortened days still count as one
func isNextDay(prev, next time.Time) bool {
	y, m, d := prev.Date()
	return DayKey(time.Date(y, m, d+1, 0, 0, 0, 0, prev.Location())) == DayKey(next)
}

func recordDates(records []models.Record) []time.Time {
	dates := make([]time.Time, 0, len(records))
	for _, r := range records {
		if isNil(r) {
			continue
		}
		dates = append(dates, r.RecordedAt())
	}
	return dates
}
