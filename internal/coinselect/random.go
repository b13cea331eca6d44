package coinselect

import "github.com/Klingon-tech/klingnet-coincore/pkg/types"

// randomElement picks a uniformly random entry from utxo and returns it
// along with the UTxO with that entry removed. Returns ok=false if utxo is
// empty.
func randomElement(rng RandSource, utxo UTxO) (Entry, UTxO, bool) {
	entries := utxo.ToList()
	if len(entries) == 0 {
		return Entry{}, utxo, false
	}
	idx := rng.IntRange(0, len(entries)-1)
	picked := entries[idx]
	return picked, utxo.Delete(picked.Input), true
}

// valueRange is an inclusive [Lo, Hi] bound on a total input sum.
type valueRange struct {
	Lo, Hi Value
}

// randomInRange draws random inputs into "used" until their sum falls
// within r, discarding any draw that would overshoot Hi (those are
// returned to the working UTxO before returning). Fails with
// ErrInputSelectionFailure if the UTxO is exhausted before either
// termination condition fires.
func randomInRange(rng RandSource, utxo UTxO, r valueRange) (map[types.Input]struct{}, UTxO, error) {
	used := make(map[types.Input]struct{})
	discarded := EmptyUTxO()
	working := utxo
	var acc Value

	for {
		if acc >= r.Lo && acc <= r.Hi {
			return used, working.Union(discarded), nil
		}

		entry, next, ok := randomElement(rng, working)
		if !ok {
			return nil, UTxO{}, ErrInputSelectionFailure
		}
		working = next

		candidate := acc.Add(entry.Output.Value)
		if candidate <= r.Hi {
			used[entry.Input] = struct{}{}
			acc = candidate
		} else {
			discarded = discarded.Insert(entry.Input, entry.Output)
		}
	}
}
