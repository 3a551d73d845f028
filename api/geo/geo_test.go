package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{49.2827, -123.1207},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{49.2827, -123.1207, 49.2606, -123.2460},
		{0, 0, 10, 10},
		{-45.0, 170.0, 60.0, -150.0},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("DistanceKm not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKmKnownDistance(t *testing.T) {
	// Vancouver downtown to UBC, roughly 9.4 km great-circle.
	d := DistanceKm(49.2827, -123.1207, 49.2606, -123.2460)
	if d < 9.0 || d > 10.0 {
		t.Errorf("DistanceKm = %v, want ~9.4", d)
	}

	// One degree of latitude at the equator is ~111.19 km.
	d = DistanceKm(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.1 {
		t.Errorf("DistanceKm one degree latitude = %v, want ~111.19", d)
	}
}

func TestDistanceKmPropagatesNaN(t *testing.T) {
	if d := DistanceKm(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("DistanceKm with NaN input = %v, want NaN", d)
	}
}
