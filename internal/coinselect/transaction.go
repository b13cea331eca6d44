package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// Transaction is the finalized result of a successful policy run: a
// freshness counter, the selected inputs, the fee-adjusted output list,
// the fee itself, a transaction hash, and caller-defined extra data.
type Transaction struct {
	Freshness uint32
	Inputs    map[types.Input]struct{}
	Outputs   []Output
	Fee       Value
	Hash      types.Hash
	Extra     [][]byte
}

// TotalOutputValue returns the sum of all output values.
func (t *Transaction) TotalOutputValue() Value {
	var total Value
	for _, o := range t.Outputs {
		total = total.Add(o.Value)
	}
	return total
}
