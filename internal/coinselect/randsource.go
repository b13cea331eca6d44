package coinselect

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// CryptoRandSource draws from crypto/rand, suitable for production use
// where the random policy's draws must not be predictable by an observer.
type CryptoRandSource struct{}

// IntRange returns a cryptographically random int in [lo, hi].
func (CryptoRandSource) IntRange(lo, hi int) int {
	if hi < lo {
		panic("coinselect: IntRange called with hi < lo")
	}
	span := int64(hi-lo) + 1
	n, err := cryptorand.Int(cryptorand.Reader, big.NewInt(span))
	if err != nil {
		panic("coinselect: crypto/rand unavailable: " + err.Error())
	}
	return lo + int(n.Int64())
}

// SeededRandSource wraps math/rand/v2 with an explicit seed, so a test can
// reproduce a run bit-exactly.
type SeededRandSource struct {
	rng *rand.Rand
}

// NewSeededRandSource returns a SeededRandSource seeded deterministically
// from the given seed pair.
func NewSeededRandSource(seed1, seed2 uint64) *SeededRandSource {
	return &SeededRandSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntRange returns a pseudo-random int in [lo, hi] drawn from the
// underlying seeded generator.
func (s *SeededRandSource) IntRange(lo, hi int) int {
	if hi < lo {
		panic("coinselect: IntRange called with hi < lo")
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// FixedSequenceRandSource replays a fixed sequence of IntRange results,
// panicking if a value falls outside the requested bounds. Used by tests
// that need to pin
// down an exact draw order, which a seeded PRNG can't guarantee across
// implementations.
type FixedSequenceRandSource struct {
	seq []int
	pos int
}

// NewFixedSequenceRandSource returns a RandSource that yields seq[0],
// seq[1], ... on successive calls, interpreted as indices into whatever
// range IntRange is called with.
func NewFixedSequenceRandSource(seq []int) *FixedSequenceRandSource {
	return &FixedSequenceRandSource{seq: seq}
}

// IntRange returns the next value in the fixed sequence. Panics if the
// sequence is exhausted — tests are expected to size it exactly.
func (f *FixedSequenceRandSource) IntRange(lo, hi int) int {
	if f.pos >= len(f.seq) {
		panic("coinselect: FixedSequenceRandSource exhausted")
	}
	v := f.seq[f.pos]
	f.pos++
	if v < lo || v > hi {
		panic("coinselect: FixedSequenceRandSource value out of requested range")
	}
	return v
}
