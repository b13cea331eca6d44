package coinselect

import (
	"testing"

	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
)

// testInput builds a deterministic Input for test fixtures: TxID has b in
// its first byte, zero elsewhere, so Input.Less orders fixtures by b (see
// utxoOf).
func testInput(b byte, index uint32) types.Input {
	var h types.Hash
	h[0] = b
	return types.Input{TxID: h, Index: index}
}

func testAddress(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

// utxoOf builds a UTxO from (tag, value) pairs. Entries sort by tag via
// Input.Less, so UTxO.ToList returns them in ascending tag order whatever
// order they are passed in here.
func utxoOf(pairs ...uint64OrTag) UTxO {
	u := EmptyUTxO()
	for _, p := range pairs {
		u = u.Insert(testInput(p.tag, 0), Output{Address: testAddress(0xA), Value: Value(p.value)})
	}
	return u
}

type uint64OrTag struct {
	tag   byte
	value uint64
}

func tv(tag byte, value uint64) uint64OrTag {
	return uint64OrTag{tag: tag, value: value}
}

// fixedFeeEstimator always returns a fixed fee regardless of inputs/outputs.
func fixedFeeEstimator(fee uint64) FeeEstimator {
	return func(numInputs int, outputs []Value) Value {
		return Value(fee)
	}
}

// counterAddressGen returns addresses 0x01, 0x02, ... on successive calls.
type counterAddressGen struct {
	next byte
}

func (c *counterAddressGen) NewChangeAddress() types.Address {
	c.next++
	return testAddress(c.next)
}

type counterHashGen struct {
	next byte
}

func (c *counterHashGen) NewTxHash() types.Hash {
	c.next++
	var h types.Hash
	h[0] = c.next
	return h
}

func testCapabilities(fee uint64) Capabilities {
	return Capabilities{
		FeeEstimator:    fixedFeeEstimator(fee),
		AddressGen:      &counterAddressGen{},
		HashGen:         &counterHashGen{},
		Rand:            CryptoRandSource{},
		TreasuryAddress: testAddress(0xFF),
	}
}

// exact single-match coverage

func TestExactSingleMatch_SingleInputCovers(t *testing.T) {
	utxo := utxoOf(tv(1, 100), tv(2, 50))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 50}}

	tx, stats, err := SelectInputs(ExactSingleMatch, testCapabilities(0), utxo, []Goal{goal})
	if err != nil {
		t.Fatalf("SelectInputs: %v", err)
	}
	if len(tx.Inputs) != 1 {
		t.Fatalf("inputs = %d, want 1", len(tx.Inputs))
	}
	if _, ok := tx.Inputs[testInput(2, 0)]; !ok {
		t.Errorf("expected i2 to be selected")
	}
	if len(tx.Outputs) != 1 || tx.Outputs[0].Value != 50 {
		t.Errorf("outputs = %+v, want single output of 50", tx.Outputs)
	}
	if tx.Fee != 0 {
		t.Errorf("fee = %d, want 0", tx.Fee)
	}
	if stats.NumInputs.Count(1) != 1 {
		t.Errorf("NumInputs histogram = %+v, want {1:1}", stats.NumInputs.Bins())
	}
	if stats.Ratios.Count(0.0) != 1 {
		t.Errorf("ratios = %+v, want {0.0:1}", stats.Ratios.Elements())
	}
}

func TestExactSingleMatch_NoMatchFails(t *testing.T) {
	utxo := utxoOf(tv(1, 100), tv(2, 50))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 77}}

	_, _, err := SelectInputs(ExactSingleMatch, testCapabilities(0), utxo, []Goal{goal})
	if err != ErrInputSelectionFailure {
		t.Errorf("err = %v, want ErrInputSelectionFailure", err)
	}
}

// largest-first with leftover change

func TestLargestFirst_ProducesChangeOutput(t *testing.T) {
	utxo := utxoOf(tv(1, 100), tv(2, 80), tv(3, 30))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 90}}

	tx, stats, err := SelectInputs(LargestFirst, testCapabilities(0), utxo, []Goal{goal})
	if err != nil {
		t.Fatalf("SelectInputs: %v", err)
	}
	if _, ok := tx.Inputs[testInput(1, 0)]; !ok || len(tx.Inputs) != 1 {
		t.Fatalf("inputs = %v, want {i1}", tx.Inputs)
	}
	if len(tx.Outputs) != 2 {
		t.Fatalf("outputs = %+v, want goal + change", tx.Outputs)
	}
	var sawGoal, sawChange bool
	for _, o := range tx.Outputs {
		switch o.Value {
		case 90:
			sawGoal = true
		case 10:
			sawChange = true
		}
	}
	if !sawGoal || !sawChange {
		t.Errorf("outputs = %+v, want 90 and 10", tx.Outputs)
	}
	if stats.Ratios.Count(10.0 / 90.0) != 1 {
		t.Errorf("ratios = %+v, want {10/90: 1}", stats.Ratios.Elements())
	}
}

func TestLargestFirst_MultiInputAccumulation(t *testing.T) {
	utxo := utxoOf(tv(1, 40), tv(2, 30), tv(3, 20))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 65}}

	tx, _, err := SelectInputs(LargestFirst, testCapabilities(0), utxo, []Goal{goal})
	if err != nil {
		t.Fatalf("SelectInputs: %v", err)
	}
	// Descending order is 40, 30, 20; 40+30=70 >= 65 covers it in two inputs
	// without touching the smallest entry.
	if _, ok := tx.Inputs[testInput(1, 0)]; !ok {
		t.Errorf("expected i1 (40) selected")
	}
	if _, ok := tx.Inputs[testInput(2, 0)]; !ok {
		t.Errorf("expected i2 (30) selected")
	}
	if _, ok := tx.Inputs[testInput(3, 0)]; ok {
		t.Errorf("i3 (20) should not have been needed")
	}
	if len(tx.Inputs) != 2 {
		t.Errorf("len(tx.Inputs) = %d, want 2", len(tx.Inputs))
	}
}

// largest-first exhaustion

func TestLargestFirst_FailsWhenUTxOExhausted(t *testing.T) {
	utxo := utxoOf(tv(1, 10), tv(2, 20))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 100}}

	_, _, err := SelectInputs(LargestFirst, testCapabilities(0), utxo, []Goal{goal})
	if err != ErrInputSelectionFailure {
		t.Errorf("err = %v, want ErrInputSelectionFailure", err)
	}
}

// fee distribution, receiver pays

func TestDistributeFee_ReceiverPaysSplitAcrossGoals(t *testing.T) {
	goals := []Goal{
		{Regulation: ReceiverPays(0.5), Output: Output{Address: testAddress(0xB), Value: 100}},
		{Regulation: ReceiverPays(0.5), Output: Output{Address: testAddress(0xC), Value: 300}},
	}
	outs, err := DistributeFee(fixedFeeEstimator(40), goals, 1)
	if err != nil {
		t.Fatalf("DistributeFee: %v", err)
	}
	if len(outs) != 2 || outs[0].Value != 90 || outs[1].Value != 290 {
		t.Errorf("outs = %+v, want [90, 290]", outs)
	}
}

// sender-pays slack requiring extra inputs

func TestRunPolicy_SenderPaysSlackNeedsExtraInputs(t *testing.T) {
	utxo := utxoOf(tv(1, 100))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 100}}

	_, _, err := SelectInputs(ExactSingleMatch, testCapabilities(10), utxo, []Goal{goal})
	need, ok := err.(*NeedsExtraInputsToCoverError)
	if !ok {
		t.Fatalf("err = %v (%T), want *NeedsExtraInputsToCoverError", err, err)
	}
	if need.Slack.Value != 10 {
		t.Errorf("slack = %d, want 10", need.Slack.Value)
	}
	if !need.Regulation.SenderPays() {
		t.Errorf("slack regulation should be SenderPaysFees")
	}
}

// multi-goal stats composition

func TestMultiGoal_StatsComposition(t *testing.T) {
	utxo := utxoOf(tv(1, 100), tv(2, 50), tv(3, 30), tv(4, 20))
	goals := []Goal{
		{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 50}},
		{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xC), Value: 30}},
	}

	_, stats, err := SelectInputs(ExactSingleMatch, testCapabilities(0), utxo, goals)
	if err != nil {
		t.Fatalf("SelectInputs: %v", err)
	}
	// Each exact-match goal consumes exactly 1 input, so the combined run
	// is a single-bin histogram at 2, not at 1+1 spread across two bins.
	if stats.NumInputs.Count(2) != 1 {
		t.Errorf("NumInputs = %+v, want single bin at 2", stats.NumInputs.Bins())
	}
	if stats.Ratios.Count(0.0) != 2 {
		t.Errorf("ratios = %+v, want {0.0: 2}", stats.Ratios.Elements())
	}
}

// treasury filtering

func TestRunPolicy_TreasuryOutputsFiltered(t *testing.T) {
	utxo := utxoOf(tv(1, 200))
	goal := Goal{Regulation: SenderPaysFees, Output: Output{Address: testAddress(0xB), Value: 100}}

	tx, _, err := SelectInputs(LargestFirst, testCapabilities(0), utxo, []Goal{goal})
	if err != nil {
		t.Fatalf("SelectInputs: %v", err)
	}
	for _, o := range tx.Outputs {
		if o.Address == testAddress(0xFF) {
			t.Errorf("treasury output leaked into final transaction: %+v", o)
		}
	}
}
