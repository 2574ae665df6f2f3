package healthlog

import "testing"

func TestHydrationProgress(t *testing.T) {
	tests := []struct {
		drinks int
		want   float64
	}{
		{0, 0},
		{1, 33.3},
		{2, 66.7},
		{3, 100},
		{4, 100},
		{10, 100},
	}
	for _, tt := range tests {
		got := Round1(HydrationProgress(tt.drinks))
		if got != tt.want {
			t.Errorf("HydrationProgress(%d) = %v, want %v", tt.drinks, got, tt.want)
		}
	}
}

func TestHydrationProgressMonotonic(t *testing.T) {
	prev := -1.0
	for drinks := 0; drinks <= 10; drinks++ {
		p := HydrationProgress(drinks)
		if p < prev {
			t.Fatalf("progress decreased at %d drinks: %v < %v", drinks, p, prev)
		}
		prev = p
	}
}

func TestJaundiceRisk(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		prev       *float64
		current    float64
		wantRising bool
		wantAlert  bool
	}{
		{"no prior record", nil, 9.0, false, false},
		{"equal values not rising", ptr(3.0), 3.0, false, false},
		{"decreasing not rising", ptr(4.0), 2.0, false, false},
		{"rising below threshold", ptr(2.0), 4.0, true, false},
		{"rising at threshold boundary", ptr(2.0), 5.0, true, false},
		{"rising above threshold", ptr(2.0), 6.0, true, true},
		{"high but not rising", ptr(8.0), 7.0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rising, alert := JaundiceRisk(tt.prev, tt.current)
			if rising != tt.wantRising {
				t.Errorf("rising = %v, want %v", rising, tt.wantRising)
			}
			if alert != tt.wantAlert {
				t.Errorf("alert = %v, want %v", alert, tt.wantAlert)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.3},
		{66.666666, 66.7},
		{100, 100},
		{-20.04, -20},
		{0.05, 0.1},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
