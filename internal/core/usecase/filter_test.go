package usecase

import "testing"

func TestQualityGateBoundaries(t *testing.T) {
	cases := []struct {
		count int
		pass  bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{2500, true},
		{2501, false},
	}
	for _, tc := range cases {
		if got := passesQualityGate(tc.count); got != tc.pass {
			t.Fatalf("passesQualityGate(%d) = %v, want %v", tc.count, got, tc.pass)
		}
	}
}

func TestRadiusMargin(t *testing.T) {
	const radius = 1500
	if !withinRadiusMargin(2249, radius) {
		t.Fatalf("2249 m should pass the 1.5x margin for radius 1500")
	}
	if !withinRadiusMargin(2250, radius) {
		t.Fatalf("exactly radius*1.5 should pass")
	}
	if withinRadiusMargin(2251, radius) {
		t.Fatalf("2251 m should be dropped")
	}
}
