package benchmarks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TwiN/deepmerge"
	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"

	"github.com/tidepool-org/riskanalytics/config"
	"github.com/tidepool-org/riskanalytics/trends"
)

// Table is static reference data used to put a subject's results in context.
// It is never mutated after it is loaded.
type Table struct {
	// PopulationAverageRiskScore is a percentage in [0, 100]
	PopulationAverageRiskScore float64 `json:"populationAverageRiskScore" mapstructure:"populationAverageRiskScore"`

	// CohortAverageRiskScores are keyed by age band (e.g. "45-54")
	CohortAverageRiskScores map[string]float64 `json:"cohortAverageRiskScores" mapstructure:"cohortAverageRiskScores"`

	// TypicalGlucose is the typical fasting glucose in mg/dL keyed by diagnosis context
	TypicalGlucose map[trends.DiagnosisContext]float64 `json:"typicalGlucose" mapstructure:"typicalGlucose"`
}

func Default() Table {
	return Table{
		PopulationAverageRiskScore: 23,
		CohortAverageRiskScores: map[string]float64{
			"18-34": 11,
			"35-44": 18,
			"45-54": 27,
			"55-64": 35,
			"65+":   41,
		},
		TypicalGlucose: map[trends.DiagnosisContext]float64{
			trends.DiagnosisContextDiagnosed: 154,
			trends.DiagnosisContextAtRisk:    105,
		},
	}
}

// Load merges a JSON override document onto the default table. Keys missing from
// the overrides keep their default values.
func Load(overrides []byte) (Table, error) {
	defaults, err := json.Marshal(Default())
	if err != nil {
		return Table{}, err
	}
	if len(overrides) == 0 {
		return Default(), nil
	}

	merged, err := deepmerge.JSON(defaults, overrides, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return Table{}, fmt.Errorf("unable to merge benchmark overrides: %w", err)
	}

	values := make(map[string]interface{})
	if err := json.Unmarshal(merged, &values); err != nil {
		return Table{}, fmt.Errorf("unable to parse benchmark overrides: %w", err)
	}

	table := Table{}
	if err := mapstructure.Decode(values, &table); err != nil {
		return Table{}, fmt.Errorf("unable to decode benchmarks: %w", err)
	}
	if err := table.Validate(); err != nil {
		return Table{}, err
	}

	return table, nil
}

func (t Table) Validate() error {
	if !validScore(t.PopulationAverageRiskScore) {
		return fmt.Errorf("population average risk score %v is out of range", t.PopulationAverageRiskScore)
	}
	for band, score := range t.CohortAverageRiskScores {
		if !validScore(score) {
			return fmt.Errorf("cohort average risk score %v for age band %q is out of range", score, band)
		}
	}
	return nil
}

func validScore(score float64) bool {
	return score >= trends.MinScore && score <= trends.MaxScore
}

func (t Table) CohortAverage(ageBand string) (float64, bool) {
	score, ok := t.CohortAverageRiskScores[ageBand]
	return score, ok
}

func (t Table) TypicalGlucoseFor(context trends.DiagnosisContext) (float64, bool) {
	value, ok := t.TypicalGlucose[context]
	return value, ok
}

// Provider hands out copies of the loaded table
type Provider struct {
	table Table
}

func NewProvider(cfg *config.Config, logger *zap.SugaredLogger) (*Provider, error) {
	if cfg.BenchmarksFile == "" {
		return &Provider{table: Default()}, nil
	}

	overrides, err := os.ReadFile(cfg.BenchmarksFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read benchmarks file: %w", err)
	}

	table, err := Load(overrides)
	if err != nil {
		return nil, err
	}

	logger.Infow("loaded benchmark overrides", "file", cfg.BenchmarksFile, "cohorts", len(table.CohortAverageRiskScores))
	return &Provider{table: table}, nil
}

func NewStaticProvider(table Table) *Provider {
	return &Provider{table: table}
}

func (p *Provider) Table() Table {
	return deepcopy.Copy(p.table).(Table)
}
