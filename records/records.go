package records

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tidepool-org/riskanalytics/errors"
	"github.com/tidepool-org/riskanalytics/trends"
)

var ErrNotFound = fmt.Errorf("profile %w", errors.NotFound)

const (
	UnitsMgdL  = "mg/dL"
	UnitsMmolL = "mmol/L"

	// MmolLToMgdL converts glucose concentrations between mmol/L and mg/dL
	MmolLToMgdL = 18.01559
)

// RiskAssessment is a single stored output of the risk model. RiskScore is kept as
// stored (probability or percentage, number or string) and normalized by the engine.
type RiskAssessment struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty"`
	UserId       string              `bson:"userId"`
	ClinicId     primitive.ObjectID  `bson:"clinicId"`
	Time         time.Time           `bson:"time"`
	RiskScore    interface{}         `bson:"riskScore"`
	ModelVersion string              `bson:"modelVersion,omitempty"`
}

type GlucoseReading struct {
	Id     *primitive.ObjectID `bson:"_id,omitempty"`
	UserId string              `bson:"userId"`
	Time   time.Time           `bson:"time"`
	Value  interface{}         `bson:"value"`
	Units  string              `bson:"units"`
}

type Profile struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty"`
	UserId       string              `bson:"userId"`
	ClinicId     primitive.ObjectID  `bson:"clinicId"`
	DiabetesType string              `bson:"diabetesType"`
	AgeBand      string              `bson:"ageBand,omitempty"`
	UpdatedTime  time.Time           `bson:"updatedTime"`
}

func (p Profile) DiagnosisContext() trends.DiagnosisContext {
	return trends.DiagnosisContextFor(p.DiabetesType)
}

// LatestScore is the most recent assessment of a single subject
type LatestScore struct {
	UserId    string      `bson:"_id"`
	Time      time.Time   `bson:"time"`
	RiskScore interface{} `bson:"riskScore"`
}

// Snapshot is the history of a subject as of a single point in time
type Snapshot struct {
	Profile     Profile
	Assessments []RiskAssessment
	Readings    []GlucoseReading
}

func RiskRawRecords(assessments []RiskAssessment) []trends.RawRecord {
	raw := make([]trends.RawRecord, 0, len(assessments))
	for _, a := range assessments {
		raw = append(raw, trends.RawRecord{
			Timestamp: a.Time.UnixMilli(),
			RawValue:  storedValue(a.RiskScore),
		})
	}
	return raw
}

// GlucoseRawRecords converts readings to mg/dL records
func GlucoseRawRecords(readings []GlucoseReading) []trends.RawRecord {
	raw := make([]trends.RawRecord, 0, len(readings))
	for _, r := range readings {
		var value interface{} = storedValue(r.Value)
		if r.Units == UnitsMmolL {
			value = trends.NormalizeMeasurement(value) * MmolLToMgdL
		}
		raw = append(raw, trends.RawRecord{
			Timestamp: r.Time.UnixMilli(),
			RawValue:  value,
		})
	}
	return raw
}

func LatestRiskScores(scores []LatestScore) []float64 {
	values := make([]float64, 0, len(scores))
	for _, s := range scores {
		values = append(values, trends.NormalizeRiskValue(storedValue(s.RiskScore)))
	}
	return values
}

// storedValue unwraps bson types the engine doesn't know about
func storedValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.Decimal128:
		return v.String()
	case primitive.Null, primitive.Undefined:
		return nil
	default:
		return value
	}
}
