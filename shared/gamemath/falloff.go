package gamemath

// Falloff returns the linear area-damage attenuation for a point at dist
// from a blast of the given radius: 1 at the center, 0 at the edge and
// beyond. Both grenade and barrel explosions share this law.
func Falloff(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	f := 1 - dist/radius
	if f < 0 {
		return 0
	}
	return f
}

// FalloffDamage applies Falloff to a base damage value.
func FalloffDamage(damage, dist, radius float64) float64 {
	return damage * Falloff(dist, radius)
}
