// Package trends turns a subject's sparse history of risk assessments and
// glucose readings into a fitted trend, a short horizon forecast and a
// classified status. Everything in this package is a pure function of its
// input: no I/O, no shared state, no caching.
package trends

const (
	// MillisecondsPerDay is the spacing of forecast points and the unit of the day axis
	MillisecondsPerDay int64 = 86400000

	MinScore = 0.0
	MaxScore = 100.0
)

// Point is a single normalized measurement
type Point struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Series is ordered by timestamp ascending. Duplicate timestamps are allowed.
type Series []Point

func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Latest returns the most recent point of the series
func (s Series) Latest() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

type Axis int

const (
	// AxisDays uses the fractional number of days since the first point
	AxisDays Axis = iota
	// AxisReadingIndex uses the position of the reading in the series
	AxisReadingIndex
)

// Sensitivity configures how a series type is regressed and when its slope counts as a direction
type Sensitivity struct {
	Name    string
	Epsilon float64
	Axis    Axis
}

var (
	RiskScoreSensitivity = Sensitivity{
		Name:    "riskScore",
		Epsilon: 0,
		Axis:    AxisDays,
	}
	GlucoseSensitivity = Sensitivity{
		Name:    "glucose",
		Epsilon: 0.5,
		Axis:    AxisReadingIndex,
	}
)

func (s Sensitivity) Direction(slope float64) Direction {
	switch {
	case slope > s.Epsilon:
		return DirectionIncreasing
	case slope < -s.Epsilon:
		return DirectionDecreasing
	default:
		return DirectionStable
	}
}

// Offsets returns the x coordinate of every point of the series
func (s Sensitivity) Offsets(series Series) []float64 {
	offsets := make([]float64, len(series))
	if len(series) == 0 {
		return offsets
	}

	first := series[0].Timestamp
	for i, p := range series {
		switch s.Axis {
		case AxisReadingIndex:
			offsets[i] = float64(i)
		default:
			offsets[i] = float64(p.Timestamp-first) / float64(MillisecondsPerDay)
		}
	}
	return offsets
}
