// Package speedgen enumerates per-clip speed assignments. Two modes
// exist: a full Cartesian "odometer" enumeration over
// allowed_speeds for exhaustive planning, and a minimal-variation palette
// used when speed_mixing is off but more than one output is requested.
package speedgen

// palette is the fixed five-value minimal-variation speed set used when
// speed_mixing is disabled and outputCount > 1, giving each output a
// slightly different assignment without exhaustive enumeration.
var palette = [5]float64{0.95, 0.97, 1.00, 1.02, 1.05}

// Uniform returns a speed assignment of 1.0 for every clip index in
// [0, n). Used when speed_mixing is disabled and only one output is
// requested.
func Uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}
	return out
}

// MinimalVariation returns one speed per clip, drawn from the fixed
// five-value palette at index (i+clipIndexOffset) mod 5.
// clipIndexOffset lets callers vary which palette entry clip 0 lands on
// across different variants of the same clip set.
func MinimalVariation(n, clipIndexOffset int) []float64 {
	out := make([]float64, n)
	for i := range out {
		idx := ((i+clipIndexOffset)%len(palette) + len(palette)) % len(palette)
		out[i] = palette[idx]
	}
	return out
}

// GenerateList produces the list of speed maps (expressed positionally,
// one []float64 per output) described by rules:
//
//   - speedMixing on: the full Cartesian product over allowedSpeeds, in
//     odometer order.
//   - speedMixing off and outputCount > 1: outputCount minimal-variation
//     maps, one per palette rotation 0..outputCount-1.
//   - speedMixing off and outputCount == 1: a single all-1.0 map.
func GenerateList(n, outputCount int, speedMixing bool, allowedSpeeds []float64) [][]float64 {
	if speedMixing {
		return Odometer(n, allowedSpeeds)
	}
	if outputCount > 1 {
		out := make([][]float64, outputCount)
		for i := 0; i < outputCount; i++ {
			out[i] = MinimalVariation(n, i)
		}
		return out
	}
	return [][]float64{Uniform(n)}
}

// Odometer enumerates every combination of allowedSpeeds assigned to n
// clip positions, in odometer (least-significant-digit-first) order: the
// last position cycles fastest. It returns nil when n is 0 or
// allowedSpeeds is empty. The number of combinations is
// len(allowedSpeeds)^n — callers enumerating a large n should bound the
// count themselves (see internal/quantity).
func Odometer(n int, allowedSpeeds []float64) [][]float64 {
	if n <= 0 || len(allowedSpeeds) == 0 {
		return nil
	}

	total := 1
	for i := 0; i < n; i++ {
		total *= len(allowedSpeeds)
	}

	combos := make([][]float64, total)
	digits := make([]int, n)
	for c := 0; c < total; c++ {
		combo := make([]float64, n)
		for i, d := range digits {
			combo[i] = allowedSpeeds[d]
		}
		combos[c] = combo

		for pos := n - 1; pos >= 0; pos-- {
			digits[pos]++
			if digits[pos] < len(allowedSpeeds) {
				break
			}
			digits[pos] = 0
		}
	}
	return combos
}
