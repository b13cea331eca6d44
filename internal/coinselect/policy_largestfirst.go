package coinselect

import (
	"sort"

	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
)

// runLargestFirst sorts the remaining UTxO descending by value and
// accumulates from the front until the sum covers each goal, synthesizing
// change if the accumulation overshoots.
//
// No explicit tie-break is applied for equal-valued entries: ties resolve
// according to UTxO.ToList's total order (Input.Less, i.e. TxID then
// Index), which is deterministic but otherwise arbitrary.
func runLargestFirst(state *InputPolicyState, caps Capabilities, goals []Goal) (PartialTxStats, error) {
	stats := EmptyPartialTxStats()

	for _, goal := range goals {
		entries := state.UTxO.ToList()
		sortDescending(entries)

		var selected []types.Input
		var sum Value
		covered := false
		for _, e := range entries {
			selected = append(selected, e.Input)
			sum = sum.Add(e.Output.Value)
			if sum >= goal.Output.Value {
				covered = true
				break
			}
		}
		if !covered {
			return PartialTxStats{}, ErrInputSelectionFailure
		}

		for _, i := range selected {
			state.selectInput(i)
		}
		state.appendOutput(goal.Regulation, goal.Output)

		change := sum.Sub(goal.Output.Value)
		if change > 0 {
			addr := caps.AddressGen.NewChangeAddress()
			state.appendOutput(goal.Regulation, Output{Address: addr, Value: change})
		}

		ratio := float64(change) / float64(goal.Output.Value)
		stats = stats.Combine(PartialTxStats{
			NumInputs: len(selected),
			Ratios:    SingletonMultiSet(ratio),
		})
	}

	return stats, nil
}

func sortDescending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Output.Value > entries[j].Output.Value
	})
}
