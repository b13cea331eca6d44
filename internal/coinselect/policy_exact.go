package coinselect

// runExactSingleMatch covers each goal with a single input whose output
// value equals the goal's value exactly. The first match in the UTxO's
// deterministic (Input.Less) order is taken.
func runExactSingleMatch(state *InputPolicyState, caps Capabilities, goals []Goal) (PartialTxStats, error) {
	stats := EmptyPartialTxStats()

	for _, goal := range goals {
		entries := state.UTxO.ToList()
		var matched bool
		for _, e := range entries {
			if e.Output.Value == goal.Output.Value {
				state.selectInput(e.Input)
				state.appendOutput(goal.Regulation, goal.Output)
				stats = stats.Combine(PartialTxStats{
					NumInputs: 1,
					Ratios:    SingletonMultiSet(0.0),
				})
				matched = true
				break
			}
		}
		if !matched {
			return PartialTxStats{}, ErrInputSelectionFailure
		}
	}

	return stats, nil
}
