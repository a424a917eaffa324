package gamemath

import (
	"math"
	"testing"
)

func TestSmoothToward(t *testing.T) {
	tests := []struct {
		name                     string
		current, target, tau, dt float64
		want                     float64
	}{
		{"snap without tau", 0, 10, 0, 1.0 / 60, 10},
		{"one time constant", 0, 10, 1, 1, 10 * (1 - math.Exp(-1))},
		{"already there", 5, 5, 0.1, 1.0 / 60, 5},
		{"decelerate", 10, 0, 1, 1, 10 * math.Exp(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SmoothToward(tt.current, tt.target, tt.tau, tt.dt)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("SmoothToward = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if _, _, ok := Normalize(0, 0); ok {
		t.Fatal("zero vector normalized")
	}
	x, y, ok := Normalize(3, 4)
	if !ok || math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Fatalf("Normalize(3,4) = %v,%v,%v", x, y, ok)
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0.05, 0.1); got != 0 {
		t.Fatalf("Approach overshoot = %v, want 0", got)
	}
	if got := Approach(0.3, 0.1); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("Approach = %v, want 0.2", got)
	}
}
