package trends

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NormalizeRiskValue converts a stored risk value into a percentage in [0, 100].
//
// Values in (0, 1] are treated as probabilities and scaled by 100. This makes a
// stored 1 (percent) indistinguishable from a probability of 0.01; historical
// records depend on that interpretation so it must stay as is.
func NormalizeRiskValue(raw interface{}) float64 {
	value, ok := coerce(raw)
	if !ok {
		return 0
	}
	if value > 0 && value <= 1 {
		value *= 100
	}
	return clamp(value, MinScore, MaxScore)
}

// NormalizeMeasurement coerces a stored measurement (e.g. glucose in mg/dL) into
// a finite, non negative float. Unlike risk values it has no upper bound.
func NormalizeMeasurement(raw interface{}) float64 {
	value, ok := coerce(raw)
	if !ok || value < 0 {
		return 0
	}
	return value
}

func coerce(raw interface{}) (float64, bool) {
	var value float64
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int8:
		value = float64(v)
	case int16:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint8:
		value = float64(v)
	case uint16:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		value = f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		value = f
	default:
		return 0, false
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
