package healthlog

import "errors"

// ErrNotVerified is the policy rejection for hydration claims the analysis
// could not confirm. No event is stored when this is returned.
var ErrNotVerified = errors.New("AI verification failed: please drink actual water to update progress")

// AdmitHydration decides whether a hydration analysis result becomes a
// verified event. Anything short of a confirmed drink is rejected, which
// also covers the fail-closed default produced on analysis failure.
func AdmitHydration(res HydrationResult) (value float64, note string, err error) {
	if !res.IsDrinking {
		return 0, "", ErrNotVerified
	}
	return float64(res.ML), res.Explanation, nil
}

// AdmitJaundice always admits: every submitted sclera photo produces a
// stored event, including low-confidence reads. There is no fake-photo
// rejection path for this intent.
func AdmitJaundice(res JaundiceResult) (value float64, note string) {
	return res.YellowIndex, res.Observation
}
