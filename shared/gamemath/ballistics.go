package gamemath

import "math"

// IntegrateBallistic advances a position/velocity pair by one step of
// gravity integration. gravity is negative (pulls Y down).
func IntegrateBallistic(pos, vel Vec3, gravity, dt float64) (Vec3, Vec3) {
	vel.Y += gravity * dt
	return pos.Add(vel.Scale(dt)), vel
}

// FlightTime predicts when a projectile launched at height y0 with vertical
// speed vy0 reaches groundY under constant gravity. Returns 0 when the
// projectile starts at or below the ground.
func FlightTime(y0, vy0, groundY, gravity float64) float64 {
	// y0 + vy0*t + g/2*t^2 = groundY, take the positive root.
	a := gravity / 2
	b := vy0
	c := y0 - groundY
	if c <= 0 && vy0 <= 0 {
		return 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 {
		t = (-b + math.Sqrt(disc)) / (2 * a)
	}
	if t < 0 {
		return 0
	}
	return t
}
