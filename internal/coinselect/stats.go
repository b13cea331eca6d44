package coinselect

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// PartialTxStats accumulates per-goal statistics within a single run: a
// scalar count of inputs consumed so far, and the multiset of change/goal
// ratios produced so far. It is monoidal — Combine is associative and has
// an identity element (EmptyPartialTxStats).
type PartialTxStats struct {
	NumInputs int
	Ratios    MultiSet
}

// EmptyPartialTxStats is the identity element for Combine.
func EmptyPartialTxStats() PartialTxStats {
	return PartialTxStats{NumInputs: 0, Ratios: NewMultiSet()}
}

// Combine adds the scalar input counts and unions the ratio multisets.
func (p PartialTxStats) Combine(other PartialTxStats) PartialTxStats {
	return PartialTxStats{
		NumInputs: p.NumInputs + other.NumInputs,
		Ratios:    p.Ratios.Union(other.Ratios),
	}
}

// String renders a one-line summary, e.g. "3 inputs, ratios [0.20 0.50]".
func (p PartialTxStats) String() string {
	return fmt.Sprintf("%d inputs, ratios %s", p.NumInputs, formatRatios(p.Ratios))
}

// partialTxStatsJSON is the wire shape for PartialTxStats: a run in
// progress is a diagnostic snapshot, not a value callers reconstruct, so
// only MarshalJSON is provided.
type partialTxStatsJSON struct {
	NumInputs int          `json:"num_inputs"`
	Ratios    []ratioCount `json:"ratios"`
}

// MarshalJSON encodes the partial stats as {"num_inputs": n, "ratios": [...]}.
// Ratios can't use a plain map[float64]int since encoding/json only allows
// string, integer, or TextMarshaler map keys.
func (p PartialTxStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(partialTxStatsJSON{
		NumInputs: p.NumInputs,
		Ratios:    ratiosToList(p.Ratios),
	})
}

// TxStats aggregates statistics across one or more finished transactions:
// a *histogram* of input counts (not a scalar sum — aggregating two
// transactions of sizes n and m must produce bins at {n, m}, never a bin
// at n+m) and the multiset union of their ratios.
type TxStats struct {
	NumInputs Histogram
	Ratios    MultiSet
}

// EmptyTxStats is the identity element for Combine.
func EmptyTxStats() TxStats {
	return TxStats{NumInputs: NewHistogram(), Ratios: NewMultiSet()}
}

// FromPartial maps a single finished run's PartialTxStats into a TxStats:
// the scalar input count becomes a one-transaction histogram bin, and the
// ratio multiset passes through unchanged.
func FromPartial(p PartialTxStats) TxStats {
	return TxStats{
		NumInputs: SingletonHistogram(p.NumInputs),
		Ratios:    p.Ratios,
	}
}

// Combine adds the input-count histograms binwise and unions the ratios.
func (t TxStats) Combine(other TxStats) TxStats {
	return TxStats{
		NumInputs: t.NumInputs.Add(other.NumInputs),
		Ratios:    t.Ratios.Union(other.Ratios),
	}
}

// String renders a one-line summary for logs and the demo CLI, e.g.
// "inputs{1:2 3:1} ratios[0.20 0.50]".
func (t TxStats) String() string {
	bins := t.NumInputs.Bins()
	keys := make([]int, 0, len(bins))
	for k := range bins {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var sb strings.Builder
	sb.WriteString("inputs{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", k, bins[k])
	}
	sb.WriteString("} ratios")
	sb.WriteString(formatRatios(t.Ratios))
	return sb.String()
}

// ratioCount pairs a change/goal ratio with its multiplicity; the wire
// shape for a MultiSet, since a bare map[float64]int can't be JSON-encoded
// (encoding/json only allows string, integer, or TextMarshaler map keys).
type ratioCount struct {
	Ratio float64 `json:"ratio"`
	Count int     `json:"count"`
}

// txStatsJSON is the wire shape for TxStats. NumInputs stays a map since
// encoding/json accepts integer map keys directly.
type txStatsJSON struct {
	NumInputs map[int]int  `json:"num_inputs"`
	Ratios    []ratioCount `json:"ratios"`
}

// MarshalJSON encodes the stats for the demo CLI's output.
func (t TxStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(txStatsJSON{
		NumInputs: t.NumInputs.Bins(),
		Ratios:    ratiosToList(t.Ratios),
	})
}

// UnmarshalJSON decodes stats previously produced by MarshalJSON.
func (t *TxStats) UnmarshalJSON(data []byte) error {
	var aux txStatsJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	counts := make(map[float64]int, len(aux.Ratios))
	for _, rc := range aux.Ratios {
		counts[rc.Ratio] = rc.Count
	}
	t.NumInputs = HistogramFromBins(aux.NumInputs)
	t.Ratios = MultiSetFromElements(counts)
	return nil
}

// formatRatios renders a MultiSet of ratios sorted ascending, repeating a
// value once per occurrence, e.g. "[0.20 0.50 0.50]".
func formatRatios(m MultiSet) string {
	elements := m.Elements()
	keys := make([]float64, 0, len(elements))
	for k := range elements {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for _, k := range keys {
		for i := 0; i < elements[k]; i++ {
			if !first {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.2f", k)
			first = false
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// ratiosToList flattens a MultiSet into a sorted slice of (ratio, count)
// pairs for JSON encoding.
func ratiosToList(m MultiSet) []ratioCount {
	elements := m.Elements()
	keys := make([]float64, 0, len(elements))
	for k := range elements {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	out := make([]ratioCount, len(keys))
	for i, k := range keys {
		out[i] = ratioCount{Ratio: k, Count: elements[k]}
	}
	return out
}
