package coinselect

import (
	"errors"
	"fmt"
)

// ErrInputSelectionFailure is returned when a policy cannot find inputs
// that cover a goal: no exact match (exact-single-match policy), or the
// UTxO is exhausted before the target is reached (largest-first, random).
var ErrInputSelectionFailure = errors.New("coinselect: input selection failure")

// InsufficientFundsToCoverFeeError is returned when fee distribution would
// drive a receiver-regulated output below zero.
type InsufficientFundsToCoverFeeError struct {
	Regulation ExpenseRegulation
	Output     Output
}

func (e *InsufficientFundsToCoverFeeError) Error() string {
	return fmt.Sprintf("coinselect: insufficient funds to cover fee on output of value %d", e.Output.Value)
}

// Is reports whether target is also an *InsufficientFundsToCoverFeeError,
// so callers can dispatch with errors.Is without caring about the payload.
func (e *InsufficientFundsToCoverFeeError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsToCoverFeeError)
	return ok
}

// NeedsExtraInputsToCoverError is returned when the selected inputs cover
// the goal values but not the fee added on top; the caller should retry
// selection with Slack appended as an extra goal.
type NeedsExtraInputsToCoverError struct {
	// Regulation is always SenderPaysFees regardless of the regulations
	// actually in play for the batch; this is a documented limitation, not
	// fixed here.
	Regulation ExpenseRegulation
	Slack      Output
}

func (e *NeedsExtraInputsToCoverError) Error() string {
	return fmt.Sprintf("coinselect: needs %d more to cover fee", e.Slack.Value)
}

// Is reports whether target is also a *NeedsExtraInputsToCoverError.
func (e *NeedsExtraInputsToCoverError) Is(target error) bool {
	_, ok := target.(*NeedsExtraInputsToCoverError)
	return ok
}
