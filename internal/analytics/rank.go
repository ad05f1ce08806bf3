package analytics

import (
	"sort"

	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
)

// DefaultTopN is the ranking size used when callers have no preference
const DefaultTopN = 10

// Ranked is one label with its occurrence count
type Ranked struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopN counts labels and returns the n most frequent, highest count first.
// Equal counts keep the order in which the label was first seen. n <= 0
// returns every label.
func TopN(labels []string, n int) []Ranked {
	index := make(map[string]int)
	ranked := make([]Ranked, 0)
	for _, l := range labels {
		if i, ok := index[l]; ok {
			ranked[i].Count++
			continue
		}
		index[l] = len(ranked)
		ranked = append(ranked, Ranked{Label: l, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RankRecords ranks the values of dimension d across records. Records that
// do not carry d are skipped.
func RankRecords(records []models.Record, d Dimension, n int) []Ranked {
	var labels []string
	for _, r := range records {
		if isNil(r) {
			continue
		}
		ls, err := Labels(r, d)
		if err != nil {
			continue
		}
		labels = append(labels, ls...)
	}
	return TopN(labels, n)
}

// Distribution counts every label of d, keyed by label
func Distribution(records []models.Record, d Dimension) map[string]int {
	dist := make(map[string]int)
	for _, r := range RankRecords(records, d, 0) {
		dist[r.Label] = r.Count
	}
	return dist
}
