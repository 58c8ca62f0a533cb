package trends

import (
	"cmp"
	"slices"
)

// RawRecord is a stored record before normalization. RawValue may be a number,
// a numeric string or nil.
type RawRecord struct {
	Timestamp int64       `json:"timestamp"`
	RawValue  interface{} `json:"rawValue"`
}

func NewRiskSeries(records []RawRecord) Series {
	return newSeries(records, NormalizeRiskValue)
}

func NewGlucoseSeries(records []RawRecord) Series {
	return newSeries(records, NormalizeMeasurement)
}

func newSeries(records []RawRecord, normalize func(interface{}) float64) Series {
	series := make(Series, 0, len(records))
	for _, r := range records {
		series = append(series, Point{
			Timestamp: r.Timestamp,
			Value:     normalize(r.RawValue),
		})
	}

	slices.SortStableFunc(series, func(a, b Point) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return series
}

// HasEnoughData reports whether a trend can be fitted to the series
func HasEnoughData(series Series) bool {
	return len(series) >= 2
}
