package life

import "math/rand/v2"

// newRand creates a deterministic source for the given seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// fillBinary fills the buffer with 0/1 values drawn from r.
func fillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}
