package gamemath

import (
	"math"
	"testing"
)

func TestFlightTimeMatchesIntegration(t *testing.T) {
	const (
		gravity = -9.8
		dt      = 1.0 / 60.0
	)

	pos := Vec3{X: 0, Y: 1.2, Z: 0}
	vel := Vec3{X: 4, Y: 5.4, Z: 2}

	predicted := FlightTime(pos.Y, vel.Y, 0, gravity)
	if predicted <= 0 {
		t.Fatalf("predicted flight time = %f, want positive", predicted)
	}

	elapsed := 0.0
	for pos.Y > 0 || vel.Y > 0 {
		pos, vel = IntegrateBallistic(pos, vel, gravity, dt)
		elapsed += dt
		if elapsed > 10 {
			t.Fatal("projectile never landed")
		}
	}

	// Discrete integration overshoots by at most one step.
	if math.Abs(elapsed-predicted) > 2*dt {
		t.Errorf("integrated landing at %f, predicted %f", elapsed, predicted)
	}
}

func TestFlightTimeAlreadyGrounded(t *testing.T) {
	if got := FlightTime(0, -1, 0, -9.8); got != 0 {
		t.Errorf("flight time from ground going down = %f, want 0", got)
	}
}

func TestIntegrateBallisticDropsVertically(t *testing.T) {
	pos := Vec3{Y: 10}
	vel := Vec3{}
	pos, vel = IntegrateBallistic(pos, vel, -9.8, 0.5)
	if vel.Y >= 0 {
		t.Errorf("velocity after gravity step = %f, want negative", vel.Y)
	}
	if pos.Y >= 10 {
		t.Errorf("height after gravity step = %f, want below 10", pos.Y)
	}
}
