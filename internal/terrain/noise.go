package terrain

import "math"

// Noise is deterministic 2-D value noise, sampled by world coordinate so
// results are stable for a given seed regardless of evaluation order.
// Used to perturb bunker floors so they read as sand, not glass.
type Noise struct {
	Seed int64
	Freq float64
}

// At returns a noise value in [-1, 1] at the world position.
func (n Noise) At(x, y float64) float64 {
	freq := n.Freq
	if freq <= 0 {
		freq = 1
	}
	x *= freq
	y *= freq

	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := fade(x - x0)
	ty := fade(y - y0)

	v00 := lattice(int64(x0), int64(y0), n.Seed)
	v10 := lattice(int64(x0)+1, int64(y0), n.Seed)
	v01 := lattice(int64(x0), int64(y0)+1, n.Seed)
	v11 := lattice(int64(x0)+1, int64(y0)+1, n.Seed)

	south := v00 + (v10-v00)*tx
	north := v01 + (v11-v01)*tx
	return south + (north-south)*ty
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 easing.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lattice hashes a grid point to [-1, 1] using a SplitMix64-style mix.
func lattice(x, y, seed int64) float64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xC2B2AE3D27D4EB4F + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v ^= v >> 31
	return float64(v&0xFFFFFFFF)/float64(0x7FFFFFFF) - 1
}
