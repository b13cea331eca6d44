package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// Output is a value-typed, immutable (address, value) pair.
type Output struct {
	Address types.Address
	Value   Value
}

// Goal is a single desired payment together with the expense regulation
// that governs how its fee share is apportioned.
type Goal struct {
	Regulation ExpenseRegulation
	Output     Output
}

// generatedOutput is a goal output or change output recorded in
// InputPolicyState.GeneratedOutputs, tagged with the regulation that
// produced it (change outputs inherit the regulation of their goal).
type generatedOutput struct {
	Regulation ExpenseRegulation
	Output     Output
}
