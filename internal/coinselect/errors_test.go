package coinselect

import (
	"errors"
	"testing"
)

func TestErrors_InsufficientFundsIsMatchesWrappedInstances(t *testing.T) {
	e1 := &InsufficientFundsToCoverFeeError{Regulation: ReceiverPays(1.0), Output: Output{Value: 5}}
	e2 := &InsufficientFundsToCoverFeeError{Regulation: ReceiverPays(0.3), Output: Output{Value: 9}}
	if !errors.Is(e1, e2) {
		t.Errorf("errors.Is should match on type regardless of payload")
	}
}

func TestErrors_NeedsExtraInputsIsMatchesWrappedInstances(t *testing.T) {
	e1 := &NeedsExtraInputsToCoverError{Regulation: SenderPaysFees, Slack: Output{Value: 1}}
	e2 := &NeedsExtraInputsToCoverError{Regulation: SenderPaysFees, Slack: Output{Value: 99}}
	if !errors.Is(e1, e2) {
		t.Errorf("errors.Is should match on type regardless of payload")
	}
}
