package sim

// Vec3 is a point in scene space.
type Vec3 struct {
	X, Y, Z float64
}

// RandomLayout scatters n nodes uniformly inside the cube [-extent, extent]^3.
// Positions are cosmetic only.
func RandomLayout(n int, extent float64, rng *Rand) []Vec3 {
	pos := make([]Vec3, n)
	for i := range pos {
		pos[i] = Vec3{
			X: rng.RangeF(-extent, extent),
			Y: rng.RangeF(-extent, extent),
			Z: rng.RangeF(-extent, extent),
		}
	}
	return pos
}
