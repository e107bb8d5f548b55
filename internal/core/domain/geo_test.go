package domain

import (
	"math"
	"testing"
)

func TestFormatDistanceRoundsUp(t *testing.T) {
	cases := []struct {
		name   string
		meters float64
		want   string
	}{
		{"zero", 0, "0 m"},
		{"sub_meter", 0.2, "1 m"},
		{"meters", 421.0, "421 m"},
		{"just_below_km", 999.4, "1000 m"},
		{"km_rounds_up_decimal", 1000.04, "1.1 km"},
		{"exact_km", 2000, "2.0 km"},
		{"long", 12345, "12.4 km"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDistance(tc.meters); got != tc.want {
				t.Fatalf("FormatDistance(%v) = %q, want %q", tc.meters, got, tc.want)
			}
		})
	}
}

func TestHaversineMetersCoincidentPoints(t *testing.T) {
	if got := HaversineMeters(48.1486, 11.5686, 48.1486, 11.5686); got != 0 {
		t.Fatalf("expected 0 distance, got %v", got)
	}
	formatted, raw := DistanceMetrics(48.1486, 11.5686, 48.1486, 11.5686)
	if formatted != "0 m" || raw != 0 {
		t.Fatalf("DistanceMetrics() = (%q, %v), want (\"0 m\", 0)", formatted, raw)
	}
}

func TestHaversineMetersKnownDistance(t *testing.T) {
	// Munich Marienplatz to Odeonsplatz is roughly 750 m as the crow flies.
	got := HaversineMeters(48.1374, 11.5755, 48.1427, 11.5772)
	if math.Abs(got-600) > 100 {
		t.Fatalf("unexpected distance %v", got)
	}
}

func TestHaversineMetersSymmetry(t *testing.T) {
	a := HaversineMeters(48.1486, 11.5686, 48.2000, 11.6000)
	b := HaversineMeters(48.2000, 11.6000, 48.1486, 11.5686)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}
