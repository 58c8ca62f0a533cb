package trends

import (
	"iter"
	"slices"
)

const DefaultForecastHorizonDays = 30

type ForecastPoint struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// ForecastSeq extrapolates the trend one day at a time for horizon days past the
// anchor. Values are clamped to [0, 100] and rounded to two decimals. The
// sequence holds no cursor, so it can be ranged over any number of times.
func ForecastSeq(trend TrendResult, anchor Anchor, horizon int) iter.Seq[ForecastPoint] {
	return func(yield func(ForecastPoint) bool) {
		for i := 1; i <= horizon; i++ {
			value := trend.ValueAt(anchor.Offset + float64(i))
			point := ForecastPoint{
				Timestamp: anchor.Timestamp + int64(i)*MillisecondsPerDay,
				Value:     round2(clamp(value, MinScore, MaxScore)),
			}
			if !yield(point) {
				return
			}
		}
	}
}

func Forecast(trend TrendResult, anchor Anchor, horizon int) []ForecastPoint {
	points := slices.Collect(ForecastSeq(trend, anchor, horizon))
	if points == nil {
		return []ForecastPoint{}
	}
	return points
}
