package compile

import "fmt"

// AtempoChain derives the sequence of atempo filter expressions that
// together realise speed: audio speed outside [0.5, 2.0] must be
// expressed as a chain of halving/doubling steps until a residual in that
// range remains, because the underlying tempo filter rejects factors
// outside it.
func AtempoChain(speed float64) []string {
	var chain []string
	for speed > 2.0 {
		chain = append(chain, "atempo=2.0")
		speed /= 2.0
	}
	for speed < 0.5 {
		chain = append(chain, "atempo=0.5")
		speed *= 2.0
	}
	chain = append(chain, fmt.Sprintf("atempo=%.6f", speed))
	return chain
}
