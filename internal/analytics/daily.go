package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

const dayLayout = "2006-01-02"

// Point is one calendar day of a derived series
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Count int       `json:"count"` // records that contributed to Value
}

// Series is a per-day metric series in ascending date order
type Series []Point

// Values returns the point values in series order
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// DayKey is the calendar-day portion of t in t's own location
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// StartOfDay returns midnight of t's calendar day in t's own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type dayBucket struct {
	date  time.Time
	sum   float64
	count int
}

// Aggregate groups records by calendar day and returns, for every requested
// metric, the per-day mean as an ascending series. Records that do not carry
// a metric are skipped for that metric only. Empty input yields an empty,
// non-nil series for every metric.
func Aggregate(records []models.Record, metrics ...Metric) map[Metric]Series {
	buckets := make(map[Metric]map[string]*dayBucket, len(metrics))
	for _, m := range metrics {
		buckets[m] = make(map[string]*dayBucket)
	}

	for _, r := range records {
		if isNil(r) {
			continue
		}
		at := r.RecordedAt()
		key := DayKey(at)
		for _, m := range metrics {
			v, err := Extract(r, m)
			if err != nil {
				continue
			}
			b, ok := buckets[m][key]
			if !ok {
				b = &dayBucket{date: StartOfDay(at)}
				buckets[m][key] = b
			}
			b.sum += v
			b.count++
		}
	}

	out := make(map[Metric]Series, len(metrics))
	for _, m := range metrics {
		out[m] = toSeries(buckets[m])
	}
	return out
}

// DailySeries is Aggregate for a single metric
func DailySeries(records []models.Record, m Metric) Series {
	return Aggregate(records, m)[m]
}

func toSeries(days map[string]*dayBucket) Series {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make(Series, 0, len(keys))
	for _, k := range keys {
		b := days[k]
		series = append(series, Point{
			Date:  b.date,
			Value: b.sum / float64(b.count),
			Count: b.count,
		})
	}
	return series
}

// Days returns the distinct calendar-day keys present in records, ascending
func Days(records []models.Record) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if isNil(r) {
			continue
		}
		seen[DayKey(r.RecordedAt())] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
