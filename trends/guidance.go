package trends

import "fmt"

// Guidance is the headline recommendation for a risk score. Diagnosed subjects get
// management focused guidance, everybody else prevention focused guidance.
type Guidance struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type GuidanceTier string

const (
	GuidanceTierVeryHigh GuidanceTier = "very_high"
	GuidanceTierHigh     GuidanceTier = "high"
	GuidanceTierModerate GuidanceTier = "moderate"
	GuidanceTierLow      GuidanceTier = "low"
)

// Guidance tiers don't share the bounds of the risk categories. Moderate guidance
// starts at 25 while the moderate risk category starts at 20.
const (
	ModerateGuidanceLowerBound = 25.0
	HighGuidanceLowerBound     = 50.0
	VeryHighGuidanceLowerBound = 75.0
)

var managementMessages = map[GuidanceTier]string{
	GuidanceTierVeryHigh: "Your assessment shows very high risk factors. Work closely with your healthcare team to optimize your diabetes management plan.",
	GuidanceTierHigh:     "Your assessment indicates elevated risk factors. Focus on glucose control through medication adherence, diet and regular monitoring.",
	GuidanceTierModerate: "Your assessment shows moderate risk factors. Keep monitoring and maintain good control through medication, diet and exercise.",
	GuidanceTierLow:      "Your assessment shows good control. Continue your current management plan and regular follow ups.",
}

// At risk subjects below the moderate bound get no headline
var preventionMessages = map[GuidanceTier]string{
	GuidanceTierVeryHigh: "Your risk score indicates very high risk. Consult your healthcare provider for a diabetes prevention plan as soon as possible.",
	GuidanceTierHigh:     "Your risk score indicates elevated risk. Focus on weight management, regular exercise and blood sugar monitoring.",
	GuidanceTierModerate: "Your risk score shows moderate risk. Lifestyle changes now can prevent progression.",
}

func GuidanceTierFor(score float64) GuidanceTier {
	switch {
	case score >= VeryHighGuidanceLowerBound:
		return GuidanceTierVeryHigh
	case score >= HighGuidanceLowerBound:
		return GuidanceTierHigh
	case score >= ModerateGuidanceLowerBound:
		return GuidanceTierModerate
	default:
		return GuidanceTierLow
	}
}

// GuidanceFor returns the headline recommendation for a normalized risk score. It returns
// false when the diagnosis context has no headline for the score.
func GuidanceFor(score float64, context DiagnosisContext) (Guidance, bool) {
	prefix := "prevention"
	messages := preventionMessages
	if context == DiagnosisContextDiagnosed {
		prefix = "management"
		messages = managementMessages
	}

	tier := GuidanceTierFor(score)
	message, ok := messages[tier]
	if !ok {
		return Guidance{}, false
	}

	return Guidance{
		Key:     fmt.Sprintf("%s_%s", prefix, tier),
		Message: message,
	}, true
}
