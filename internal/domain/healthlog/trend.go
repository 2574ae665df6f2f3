package healthlog

import "math"

// DailyDrinkTarget is the number of verified drinks that counts as a full
// day of hydration compliance.
const DailyDrinkTarget = 3

// AlertThreshold is the yellow index above which a rising trend escalates
// to an elevated alert.
const AlertThreshold = 5.0

// HydrationProgress converts today's verified drink count into a compliance
// percentage, capped at 100.
func HydrationProgress(verifiedDrinksToday int) float64 {
	progress := float64(verifiedDrinksToday) / DailyDrinkTarget * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// JaundiceRisk compares a new yellow index against the immediately preceding
// one. The trend is rising only under strict increase; with no prior record
// there is nothing to compare against, so the trend is never rising. A rising
// trend above the alert threshold escalates.
func JaundiceRisk(prev *float64, current float64) (rising, alert bool) {
	rising = prev != nil && current > *prev
	alert = rising && current > AlertThreshold
	return rising, alert
}

// Round1 rounds to one decimal for display. Callers keep the unrounded
// value authoritative.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
