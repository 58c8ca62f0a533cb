package trends

import "math"

// singularDenominator is the largest |n·Σx² − (Σx)²| treated as a singular system
const singularDenominator = 1e-4

type TrendResult struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Direction Direction `json:"direction"`
}

// Anchor is the last observed point of a fitted series, expressed on the fit's axis
type Anchor struct {
	Timestamp int64   `json:"timestamp"`
	Offset    float64 `json:"offset"`
}

type Fit struct {
	Result TrendResult
	Anchor Anchor

	// Degenerate is set when the least squares system was singular and the fit fell back to the mean
	Degenerate bool
}

// FitTrend fits an ordinary least squares line through the series. It returns
// false when the series has fewer than two points.
func FitTrend(series Series, sensitivity Sensitivity) (Fit, bool) {
	if !HasEnoughData(series) {
		return Fit{}, false
	}

	xs := sensitivity.Offsets(series)
	n := float64(len(series))

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range series {
		x := xs[i]
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumX2 += x * x
	}

	var slope, intercept float64
	degenerate := false

	denominator := n*sumX2 - sumX*sumX
	if math.Abs(denominator) <= singularDenominator {
		degenerate = true
		slope = 0
		intercept = sumY / n
	} else {
		slope = (n*sumXY - sumX*sumY) / denominator
		intercept = (sumY - slope*sumX) / n
	}

	last := len(series) - 1
	return Fit{
		Result: TrendResult{
			Slope:     slope,
			Intercept: intercept,
			Direction: sensitivity.Direction(slope),
		},
		Anchor: Anchor{
			Timestamp: series[last].Timestamp,
			Offset:    xs[last],
		},
		Degenerate: degenerate,
	}, true
}

// ValueAt evaluates the fitted line at the given offset
func (t TrendResult) ValueAt(offset float64) float64 {
	return t.Slope*offset + t.Intercept
}
