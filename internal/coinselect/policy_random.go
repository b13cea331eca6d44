package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// attemptRandomSelection tries the ideal range first under privacy mode,
// falling back to the fallback range if the ideal attempt fails or
// privacy mode is off. The ideal attempt's failure is swallowed here — it
// is not a reported error, just a two-phase attempt within one goal.
func attemptRandomSelection(rng RandSource, utxo UTxO, privacy PrivacyMode, ideal, fallback valueRange) (map[types.Input]struct{}, UTxO, Value, error) {
	if privacy == PrivacyModeOn {
		if selected, next, err := randomInRange(rng, utxo, ideal); err == nil {
			return selected, next, sumSelected(utxo, selected), nil
		}
	}

	selected, next, err := randomInRange(rng, utxo, fallback)
	if err != nil {
		return nil, UTxO{}, 0, err
	}
	return selected, next, sumSelected(utxo, selected), nil
}

func sumSelected(utxo UTxO, selected map[types.Input]struct{}) Value {
	var total Value
	for i := range selected {
		if o, ok := utxo.Get(i); ok {
			total = total.Add(o.Value)
		}
	}
	return total
}

// runRandom covers each goal with a randomly drawn subset of the UTxO
// targeting an "ideal" change range (0.5x-2x the goal value) under privacy
// mode, falling back to "any amount at least the goal value" if the ideal
// range can't be reached or privacy mode is off.
func runRandom(state *InputPolicyState, caps Capabilities, goals []Goal, privacy PrivacyMode) (PartialTxStats, error) {
	stats := EmptyPartialTxStats()

	for _, goal := range goals {
		v := goal.Output.Value
		ideal := valueRange{Lo: v + v/2, Hi: v + 2*v}
		fallback := valueRange{Lo: v, Hi: ^Value(0)}

		selected, newUTxO, sum, err := attemptRandomSelection(caps.Rand, state.UTxO, privacy, ideal, fallback)
		if err != nil {
			return PartialTxStats{}, err
		}

		state.UTxO = newUTxO
		for i := range selected {
			state.SelectedInputs[i] = struct{}{}
		}
		state.appendOutput(goal.Regulation, goal.Output)

		change := sum.Sub(v)
		if change > 0 {
			addr := caps.AddressGen.NewChangeAddress()
			state.appendOutput(goal.Regulation, Output{Address: addr, Value: change})
		}

		ratio := float64(change) / float64(v)
		stats = stats.Combine(PartialTxStats{
			NumInputs: len(selected),
			Ratios:    SingletonMultiSet(ratio),
		})
	}

	return stats, nil
}
