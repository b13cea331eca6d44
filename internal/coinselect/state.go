package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// InputPolicyState is the mutable working set threaded through a single
// selection run. It is an ordinary record passed by exclusive mutable
// reference through each policy step — no dynamic dispatch is needed to
// thread it.
type InputPolicyState struct {
	// UTxO is the remaining available UTxO; entries are removed from it as
	// inputs are selected.
	UTxO UTxO

	// SelectedInputs is the set of inputs chosen so far. It is always
	// disjoint from UTxO.Domain() and is a subset of the initial UTxO's
	// domain.
	SelectedInputs map[types.Input]struct{}

	// GeneratedOutputs holds goal and change outputs, in generation order:
	// goals are processed left-to-right, and a goal's change output, if
	// any, immediately follows its own goal output.
	GeneratedOutputs []generatedOutput
}

func initState(utxo UTxO) *InputPolicyState {
	return &InputPolicyState{
		UTxO:             utxo,
		SelectedInputs:   make(map[types.Input]struct{}),
		GeneratedOutputs: nil,
	}
}

// selectInput moves i from s.UTxO into s.SelectedInputs. The caller must
// have already verified i is present in s.UTxO.
func (s *InputPolicyState) selectInput(i types.Input) {
	s.UTxO = s.UTxO.Delete(i)
	s.SelectedInputs[i] = struct{}{}
}

// appendOutput records a generated output (goal or change) in generation
// order.
func (s *InputPolicyState) appendOutput(reg ExpenseRegulation, out Output) {
	s.GeneratedOutputs = append(s.GeneratedOutputs, generatedOutput{Regulation: reg, Output: out})
}

// outputs returns the generated outputs in generation order.
func (s *InputPolicyState) outputs() []generatedOutput {
	return s.GeneratedOutputs
}

// PolicyBody is the stateful computation a policy run executes: it has
// authority to mutate state and must return the PartialTxStats for the
// goals it processed, or one of the typed Failure variants (programmer
// errors are raised as panics instead).
type PolicyBody func(state *InputPolicyState, caps Capabilities) (PartialTxStats, error)

// RunPolicy executes the policy framework algorithm: initialize state, run
// the body, filter treasury outputs, distribute the fee, check solvency,
// and finalize into a Transaction plus TxStats.
func RunPolicy(caps Capabilities, initialUTxO UTxO, body PolicyBody) (*Transaction, TxStats, error) {
	state := initState(initialUTxO)

	partial, err := body(state, caps)
	if err != nil {
		return nil, TxStats{}, err
	}

	selected := state.SelectedInputs
	generated := state.outputs()

	// Filter out treasury outputs: they exist only to drive the solvency
	// check below and must never appear in the final transaction.
	var nonTreasury []generatedOutput
	for _, g := range generated {
		if g.Output.Address != caps.TreasuryAddress {
			nonTreasury = append(nonTreasury, g)
		}
	}

	goals := make([]Goal, len(nonTreasury))
	for i, g := range nonTreasury {
		goals[i] = Goal{Regulation: g.Regulation, Output: g.Output}
	}

	distributed, err := DistributeFee(caps.FeeEstimator, goals, len(selected))
	if err != nil {
		return nil, TxStats{}, err
	}

	amountNeeded := sumOutputs(distributed)
	amountCovered := initialUTxO.RestrictTo(selected).Balance()

	if amountCovered < amountNeeded {
		return nil, TxStats{}, &NeedsExtraInputsToCoverError{
			Regulation: SenderPaysFees,
			Slack:      Output{Address: caps.TreasuryAddress, Value: amountNeeded.Sub(amountCovered)},
		}
	}

	fee := caps.FeeEstimator(len(selected), outputValues(distributed))

	tx := &Transaction{
		Freshness: 1,
		Inputs:    selected,
		Outputs:   distributed,
		Fee:       fee,
		Hash:      caps.HashGen.NewTxHash(),
	}

	return tx, FromPartial(partial), nil
}

func sumOutputs(outs []Output) Value {
	var total Value
	for _, o := range outs {
		total = total.Add(o.Value)
	}
	return total
}

func outputValues(outs []Output) []Value {
	vals := make([]Value, len(outs))
	for i, o := range outs {
		vals[i] = o.Value
	}
	return vals
}
