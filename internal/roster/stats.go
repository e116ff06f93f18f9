package roster

import "math"

// Stats is the summary shown under the table.
type Stats struct {
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	HasMean   bool    `json:"has_mean"`
	MeanLabel string  `json:"mean_label"`
}

// Mean returns the arithmetic mean of the present, finite scores. ok is false
// when there are none.
func Mean(records []Record) (mean float64, ok bool) {
	var sum float64
	var n int
	for _, r := range records {
		if r.Score == nil || math.IsNaN(*r.Score) || math.IsInf(*r.Score, 0) {
			continue
		}
		sum += *r.Score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Summarize computes the stats for records under variant v.
func Summarize(records []Record, v Variant) Stats {
	mean, ok := Mean(records)
	return Stats{
		Count:     len(records),
		Mean:      mean,
		HasMean:   ok,
		MeanLabel: v.FormatMean(mean, ok),
	}
}
