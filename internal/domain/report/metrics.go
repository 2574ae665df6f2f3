// Package report derives clinical summary metrics from the most recent
// health events and drives the narrative generator.
package report

import "math"

// Fixed clinical baselines the deviation metrics are computed against.
const (
	TargetWaterML    = 2500.0
	BaselineJaundice = 2.0
)

// Metrics are the two percentage deviations rendered in every summary.
type Metrics struct {
	WaterDropPct     float64 `json:"waterDropPct"`
	BilirubinRisePct float64 `json:"bilirubinRisePct"`
}

// WaterDropPct is how far the latest intake falls short of the daily target,
// as a percentage. Negative when intake exceeds the target; deliberately
// not clamped.
func WaterDropPct(currentWaterML float64) float64 {
	return round1((TargetWaterML - currentWaterML) / TargetWaterML * 100)
}

// BilirubinRisePct is the rise of the scleral index above the healthy
// baseline, as a percentage. An index at or below baseline reports zero,
// never a negative value.
func BilirubinRisePct(currentJaundice float64) float64 {
	if currentJaundice <= BaselineJaundice {
		return 0
	}
	return round1((currentJaundice - BaselineJaundice) / BaselineJaundice * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
