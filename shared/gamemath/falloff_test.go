package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestFalloffBounds(t *testing.T) {
	if got := Falloff(0, 4); math.Abs(got-1) > epsilon {
		t.Errorf("falloff at center = %f, want 1", got)
	}
	if got := Falloff(4, 4); math.Abs(got) > epsilon {
		t.Errorf("falloff at edge = %f, want 0", got)
	}
	if got := Falloff(6, 4); got != 0 {
		t.Errorf("falloff beyond edge = %f, want 0", got)
	}
	if got := Falloff(2, 0); got != 0 {
		t.Errorf("falloff with zero radius = %f, want 0", got)
	}
}

func TestFalloffLinear(t *testing.T) {
	if got := Falloff(1, 4); math.Abs(got-0.75) > epsilon {
		t.Errorf("falloff at 1/4 = %f, want 0.75", got)
	}
	if got := Falloff(3, 4); math.Abs(got-0.25) > epsilon {
		t.Errorf("falloff at 3/4 = %f, want 0.25", got)
	}
}

func TestFalloffDamage(t *testing.T) {
	if got := FalloffDamage(80, 2, 4); math.Abs(got-40) > epsilon {
		t.Errorf("damage at half radius = %f, want 40", got)
	}
}
