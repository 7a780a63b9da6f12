package geo

import (
	"math"
	"testing"
)

func TestHaversineDistanceZeroForIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{40.4168, -3.7038},
		{-33.4489, -70.6693},
	}
	for _, p := range points {
		if d := HaversineDistance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("HaversineDistance(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := [2]float64{40.4168, -3.7038}
	b := [2]float64{41.3874, 2.1686}

	d1 := HaversineDistance(a[0], a[1], b[0], b[1])
	d2 := HaversineDistance(b[0], b[1], a[0], a[1])

	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineDistanceKnownValue(t *testing.T) {
	// 0.0009 degrees of longitude on the equator is roughly 100 meters.
	d := HaversineDistance(0, 0, 0, 0.0009)
	if d < 95 || d > 105 {
		t.Errorf("HaversineDistance(0,0 -> 0,0.0009) = %v, want ~100", d)
	}
}

func TestEvaluate(t *testing.T) {
	fence := Fence{CenterLat: 0, CenterLng: 0, RadiusMeters: 100, AccuracyThreshold: 50}

	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name       string
		lat, lng   *float64
		accuracy   *float64
		wantNil    bool
		wantInside bool
		wantAccOK  bool
	}{
		{"no sample", nil, nil, nil, true, false, false},
		{"missing longitude", f(0), nil, nil, true, false, false},
		{"at center", f(0), f(0), f(10), false, true, true},
		{"far away", f(1), f(1), f(10), false, false, true},
		{"poor accuracy", f(0), f(0), f(80), false, true, false},
		{"no accuracy sample", f(0), f(0), nil, false, true, false},
	}

	for _, c := range cases {
		got := Evaluate(fence, c.lat, c.lng, c.accuracy)
		if c.wantNil {
			if got != nil {
				t.Errorf("%s: Evaluate = %+v, want nil", c.name, got)
			}
			continue
		}
		if got == nil {
			t.Fatalf("%s: Evaluate = nil, want result", c.name)
		}
		if got.Inside != c.wantInside {
			t.Errorf("%s: Inside = %v, want %v", c.name, got.Inside, c.wantInside)
		}
		if got.AccuracyOK != c.wantAccOK {
			t.Errorf("%s: AccuracyOK = %v, want %v", c.name, got.AccuracyOK, c.wantAccOK)
		}
	}
}

func TestEvaluateDistanceRounded(t *testing.T) {
	fence := Fence{CenterLat: 0, CenterLng: 0, RadiusMeters: 100, AccuracyThreshold: 50}
	lat, lng := 0.0, 0.0009
	got := Evaluate(fence, &lat, &lng, nil)
	if got == nil {
		t.Fatal("Evaluate = nil")
	}
	want := int(math.Round(HaversineDistance(0, 0, 0, 0.0009)))
	if got.Distance != want {
		t.Errorf("Distance = %d, want %d", got.Distance, want)
	}
	if got.Distance < 95 || got.Distance > 105 {
		t.Errorf("Distance = %d, want ~100", got.Distance)
	}
}
