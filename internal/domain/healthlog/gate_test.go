package healthlog

import (
	"errors"
	"testing"
)

func TestAdmitHydrationAccepted(t *testing.T) {
	value, note, err := AdmitHydration(HydrationResult{
		IsDrinking:  true,
		ML:          250,
		Explanation: "visible swallow at 0:03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 250 {
		t.Errorf("value = %v, want 250", value)
	}
	if note != "visible swallow at 0:03" {
		t.Errorf("note = %q", note)
	}
}

func TestAdmitHydrationRejected(t *testing.T) {
	_, _, err := AdmitHydration(HydrationResult{
		IsDrinking:  false,
		Explanation: "bottle never touched lips",
	})
	if !errors.Is(err, ErrNotVerified) {
		t.Errorf("err = %v, want ErrNotVerified", err)
	}
}

func TestAdmitHydrationRejectsFallback(t *testing.T) {
	_, _, err := AdmitHydration(hydrationFallback)
	if !errors.Is(err, ErrNotVerified) {
		t.Errorf("fail-closed default must be rejected, got %v", err)
	}
}

func TestAdmitJaundiceAlwaysAdmits(t *testing.T) {
	value, note := AdmitJaundice(JaundiceResult{
		YellowIndex: 6.2,
		Status:      "Significant yellowing",
		Observation: "amber hue across sclera",
	})
	if value != 6.2 {
		t.Errorf("value = %v, want 6.2", value)
	}
	if note != "amber hue across sclera" {
		t.Errorf("note = %q", note)
	}

	// Even the degraded default is admitted and stored.
	value, note = AdmitJaundice(jaundiceFallback)
	if value != 0.0 || note != "Analysis failed." {
		t.Errorf("fallback admit = (%v, %q)", value, note)
	}
}
