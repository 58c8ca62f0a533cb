package trends

// Distribution partitions a set of current scores into the risk bands.
// Low+Moderate+High+VeryHigh always equals the number of scores.
type Distribution struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
	VeryHigh int `json:"veryHigh"`
}

type DistributionPercentages struct {
	Low      float64 `json:"low"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
	VeryHigh float64 `json:"veryHigh"`
}

// Aggregate counts already normalized scores per band. Boundary values belong to the higher band.
func Aggregate(scores []float64) Distribution {
	d := Distribution{}
	for _, score := range scores {
		d.add(CategorizeRisk(score))
	}
	return d
}

func (d *Distribution) add(category RiskCategory) {
	switch category {
	case RiskCategoryLow:
		d.Low++
	case RiskCategoryModerate:
		d.Moderate++
	case RiskCategoryHigh:
		d.High++
	case RiskCategoryVeryHigh:
		d.VeryHigh++
	}
}

func (d Distribution) Total() int {
	return d.Low + d.Moderate + d.High + d.VeryHigh
}

func (d Distribution) Count(category RiskCategory) int {
	switch category {
	case RiskCategoryLow:
		return d.Low
	case RiskCategoryModerate:
		return d.Moderate
	case RiskCategoryHigh:
		return d.High
	case RiskCategoryVeryHigh:
		return d.VeryHigh
	}
	return 0
}

// Percentages are rounded to two decimals. An empty distribution yields zeros.
func (d Distribution) Percentages() DistributionPercentages {
	total := d.Total()
	return DistributionPercentages{
		Low:      Percent(d.Low, total),
		Moderate: Percent(d.Moderate, total),
		High:     Percent(d.High, total),
		VeryHigh: Percent(d.VeryHigh, total),
	}
}

func Percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(count) * 100 / float64(total))
}
