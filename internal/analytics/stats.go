package analytics

import "math"

// Direction is the coarse three-way trend classification
type Direction string

const (
	TrendIncreasing Direction = "increasing"
	TrendDecreasing Direction = "decreasing"
	TrendStable     Direction = "stable"
)

// TrendThresholdPercent is the half-over-half change needed to leave "stable"
const TrendThresholdPercent = 5.0

// Stats summarizes one value series. When Count is zero every other field is
// the zero value (Trend is stable) and callers must not read meaning into them.
type Stats struct {
	Count  int       `json:"count"`
	Mean   float64   `json:"mean"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	StdDev float64   `json:"standard_deviation"`
	Trend  Direction `json:"trend"`
}

// Summarize computes count, mean, extrema, population standard deviation and
// trend direction for values. It never fails. Fewer than two values give
// zeroed extrema and deviation with a stable trend; a single value still
// reports its count and mean.
func Summarize(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{Trend: TrendStable}
	}
	if n == 1 {
		return Stats{Count: 1, Mean: values[0], Trend: TrendStable}
	}

	minV, maxV := values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return Stats{
		Count:  n,
		Mean:   mean,
		Min:    minV,
		Max:    maxV,
		StdDev: math.Sqrt(sq / float64(n)),
		Trend:  ClassifyTrend(values),
	}
}

// SummarizeSeries is Summarize over the series values
func SummarizeSeries(s Series) Stats {
	return Summarize(s.Values())
}

// ClassifyTrend compares the mean of the first floor(n/2) values with the
// mean of the rest. A first-half mean of exactly zero is reported as stable
// rather than dividing by zero; this also covers n < 2.
func ClassifyTrend(values []float64) Direction {
	mid := len(values) / 2
	firstMean := mean(values[:mid])
	if firstMean == 0 {
		return TrendStable
	}
	secondMean := mean(values[mid:])

	change := (secondMean - firstMean) / firstMean * 100
	switch {
	case change > TrendThresholdPercent:
		return TrendIncreasing
	case change < -TrendThresholdPercent:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
