package trends

import (
	"math"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type DiagnosisContext string

const (
	DiagnosisContextDiagnosed DiagnosisContext = "diagnosed"
	DiagnosisContextAtRisk    DiagnosisContext = "atRisk"
)

var diagnosedTypes = mapset.NewSet[string]("type1", "type2", "gestational", "other")

// DiagnosisContextFor maps a stored diabetes type to the threshold context used for glucose
func DiagnosisContextFor(diabetesType string) DiagnosisContext {
	if diagnosedTypes.Contains(strings.ToLower(strings.TrimSpace(diabetesType))) {
		return DiagnosisContextDiagnosed
	}
	return DiagnosisContextAtRisk
}

type GlucoseStatus string

const (
	GlucoseStatusHigh       GlucoseStatus = "high"
	GlucoseStatusLow        GlucoseStatus = "low"
	GlucoseStatusNormalHigh GlucoseStatus = "normal_high"
	GlucoseStatusNormal     GlucoseStatus = "normal"
)

type glucoseThresholds struct {
	high          float64
	highInclusive bool
	low           float64
	normalHigh    float64
	nhInclusive   bool
}

// mg/dL
var (
	diagnosedGlucoseThresholds = glucoseThresholds{high: 180, low: 70, normalHigh: 140}
	atRiskGlucoseThresholds    = glucoseThresholds{high: 126, highInclusive: true, low: 70, normalHigh: 100, nhInclusive: true}
)

func above(value, threshold float64, inclusive bool) bool {
	if inclusive {
		return value >= threshold
	}
	return value > threshold
}

// ClassifyGlucose applies the threshold table of the subject's diagnosis context
func ClassifyGlucose(mgdl float64, context DiagnosisContext) GlucoseStatus {
	t := atRiskGlucoseThresholds
	if context == DiagnosisContextDiagnosed {
		t = diagnosedGlucoseThresholds
	}

	switch {
	case above(mgdl, t.high, t.highInclusive):
		return GlucoseStatusHigh
	case mgdl < t.low:
		return GlucoseStatusLow
	case above(mgdl, t.normalHigh, t.nhInclusive):
		return GlucoseStatusNormalHigh
	default:
		return GlucoseStatusNormal
	}
}

type StatusClassification struct {
	Status           GlucoseStatus    `json:"status"`
	DiagnosisContext DiagnosisContext `json:"diagnosisContext"`
	Direction        Direction        `json:"direction"`
	Latest           *Point           `json:"latest,omitempty"`
}

// ClassifyGlucoseSeries classifies the latest reading and the direction of the
// glucose trend. With fewer than two readings it returns normal and stable.
func ClassifyGlucoseSeries(series Series, context DiagnosisContext) StatusClassification {
	classification := StatusClassification{
		Status:           GlucoseStatusNormal,
		DiagnosisContext: context,
		Direction:        DirectionStable,
	}

	fit, ok := FitTrend(series, GlucoseSensitivity)
	if !ok {
		return classification
	}

	latest, _ := series.Latest()
	classification.Status = ClassifyGlucose(latest.Value, context)
	classification.Direction = fit.Result.Direction
	classification.Latest = &latest
	return classification
}

type RiskCategory string

const (
	RiskCategoryLow      RiskCategory = "low"
	RiskCategoryModerate RiskCategory = "moderate"
	RiskCategoryHigh     RiskCategory = "high"
	RiskCategoryVeryHigh RiskCategory = "very_high"
)

// Lower bounds of the risk bands. Each bound is inclusive.
const (
	ModerateRiskLowerBound = 20.0
	HighRiskLowerBound     = 50.0
	VeryHighRiskLowerBound = 75.0
)

var RiskCategories = []RiskCategory{
	RiskCategoryLow,
	RiskCategoryModerate,
	RiskCategoryHigh,
	RiskCategoryVeryHigh,
}

// CategorizeRisk assigns a normalized score to its band. It does not depend on the diagnosis.
func CategorizeRisk(score float64) RiskCategory {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}

	switch {
	case score < ModerateRiskLowerBound:
		return RiskCategoryLow
	case score < HighRiskLowerBound:
		return RiskCategoryModerate
	case score < VeryHighRiskLowerBound:
		return RiskCategoryHigh
	default:
		return RiskCategoryVeryHigh
	}
}
