package export

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tidepool-org/riskanalytics/trends"
)

var (
	veryHighColor = color.New(color.FgRed, color.Bold)
	highColor     = color.New(color.FgMagenta, color.Bold)
	moderateColor = color.New(color.FgYellow)
	lowColor      = color.New(color.FgGreen)
)

var title = cases.Title(language.English)

// Label turns an enum value like "very_high" or "normal_high" into "Very High"
func Label(value string) string {
	return title.String(strings.ReplaceAll(value, "_", " "))
}

func categoryLabel(category trends.RiskCategory, useColors bool) string {
	text := Label(string(category))
	if !useColors {
		return text
	}

	switch category {
	case trends.RiskCategoryVeryHigh:
		return veryHighColor.Sprint(text)
	case trends.RiskCategoryHigh:
		return highColor.Sprint(text)
	case trends.RiskCategoryModerate:
		return moderateColor.Sprint(text)
	default:
		return lowColor.Sprint(text)
	}
}

func glucoseLabel(status trends.GlucoseStatus, useColors bool) string {
	text := Label(string(status))
	if !useColors {
		return text
	}

	switch status {
	case trends.GlucoseStatusHigh, trends.GlucoseStatusLow:
		return veryHighColor.Sprint(text)
	case trends.GlucoseStatusNormalHigh:
		return moderateColor.Sprint(text)
	default:
		return lowColor.Sprint(text)
	}
}

func formatScore(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
