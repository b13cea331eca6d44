package coinselect

// PrivacyMode controls whether the random policy prefers change sizes in
// the "ideal" 0.5x–2x range before falling back to any-sized change.
type PrivacyMode bool

const (
	PrivacyModeOn  PrivacyMode = true
	PrivacyModeOff PrivacyMode = false
)

// Policy selects which of the three selection strategies SelectInputs runs.
type Policy struct {
	kind    policyKind
	privacy PrivacyMode
}

type policyKind int

const (
	policyExactSingleMatch policyKind = iota
	policyLargestFirst
	policyRandom
)

// ExactSingleMatch is the trivial policy: one UTxO per goal with an exact
// matching value. Intended for tests, not production selection.
var ExactSingleMatch = Policy{kind: policyExactSingleMatch}

// LargestFirst is the deterministic greedy policy.
var LargestFirst = Policy{kind: policyLargestFirst}

// Random returns the randomized policy with the given privacy mode.
func Random(privacy PrivacyMode) Policy {
	return Policy{kind: policyRandom, privacy: privacy}
}

// SelectInputs runs the given policy over goals against utxo, returning a
// finalized Transaction and its TxStats, or a typed Failure.
func SelectInputs(policy Policy, caps Capabilities, utxo UTxO, goals []Goal) (*Transaction, TxStats, error) {
	switch policy.kind {
	case policyExactSingleMatch:
		return RunPolicy(caps, utxo, func(state *InputPolicyState, caps Capabilities) (PartialTxStats, error) {
			return runExactSingleMatch(state, caps, goals)
		})
	case policyLargestFirst:
		return RunPolicy(caps, utxo, func(state *InputPolicyState, caps Capabilities) (PartialTxStats, error) {
			return runLargestFirst(state, caps, goals)
		})
	case policyRandom:
		return RunPolicy(caps, utxo, func(state *InputPolicyState, caps Capabilities) (PartialTxStats, error) {
			return runRandom(state, caps, goals, policy.privacy)
		})
	default:
		panic("coinselect: unknown policy")
	}
}
