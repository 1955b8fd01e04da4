package geo_test

import (
	"math"
	"testing"

	"github.com/Black-Room-Studios/livevibe-server/internal/geo"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	d := geo.DistanceMiles(34.280234, -119.294682, 34.280234, -119.294682)
	if d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := geo.DistanceMiles(34.2802, -119.2947, 34.0522, -118.2437)
	b := geo.DistanceMiles(34.0522, -118.2437, 34.2802, -119.2947)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// One degree of latitude on a 3958.8 mile sphere is about 69.09 miles.
	d := geo.DistanceMiles(0, 0, 1, 0)
	if math.Abs(d-69.094) > 0.01 {
		t.Fatalf("expected ~69.094 miles, got %v", d)
	}
}

func TestDistancePositive(t *testing.T) {
	d := geo.DistanceMiles(34.2802, -119.2947, 34.2810, -119.2950)
	if d <= 0 {
		t.Fatalf("expected positive distance, got %v", d)
	}
}
