package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// FeeEstimator computes the fee for a transaction with the given number of
// inputs and output values. It must be pure and deterministic; the core
// never retries or caches its result beyond a single run.
type FeeEstimator func(numInputs int, outputs []Value) Value

// AddressGenerator returns a fresh, distinct change address on each call.
type AddressGenerator interface {
	NewChangeAddress() types.Address
}

// HashGenerator returns a transaction hash, called exactly once per
// successful finalization.
type HashGenerator interface {
	NewTxHash() types.Hash
}

// RandSource is the randomness capability the random policy and
// randomElement draw from. IntRange returns a value uniformly distributed
// in [lo, hi] inclusive.
type RandSource interface {
	IntRange(lo, hi int) int
}

// Capabilities bundles the host-provided collaborators a policy run needs
// beyond the UTxO and goals themselves, as a small record passed alongside
// the state rather than threading five separate parameters through every
// call.
type Capabilities struct {
	FeeEstimator    FeeEstimator
	AddressGen      AddressGenerator
	HashGen         HashGenerator
	Rand            RandSource
	TreasuryAddress types.Address
}
