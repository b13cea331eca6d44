package coinselect

import (
	"sort"

	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
)

// UTxO is a finite mapping from Input to Output. It is a value type: every
// mutating method returns a new UTxO and leaves the receiver untouched, so
// the core always works on a copy of the caller's view rather than the
// caller's original map.
type UTxO struct {
	entries map[types.Input]Output
}

// EmptyUTxO returns a UTxO with no entries.
func EmptyUTxO() UTxO {
	return UTxO{entries: make(map[types.Input]Output)}
}

// FromMap builds a UTxO from an existing map, copying it so the caller's
// map can be mutated afterwards without affecting the result.
func FromMap(m map[types.Input]Output) UTxO {
	cp := make(map[types.Input]Output, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return UTxO{entries: cp}
}

// ToMap returns a copy of the underlying map.
func (u UTxO) ToMap() map[types.Input]Output {
	cp := make(map[types.Input]Output, len(u.entries))
	for k, v := range u.entries {
		cp[k] = v
	}
	return cp
}

// Entry pairs an Input with its Output, returned by ToList.
type Entry struct {
	Input  types.Input
	Output Output
}

// ToList returns all entries sorted by Input.Less, giving a deterministic
// iteration order for policies (largest-first) that don't specify their
// own tie-break.
func (u UTxO) ToList() []Entry {
	out := make([]Entry, 0, len(u.entries))
	for k, v := range u.entries {
		out = append(out, Entry{Input: k, Output: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Input.Less(out[j].Input)
	})
	return out
}

// Insert returns a UTxO with (i, o) added (or overwritten).
func (u UTxO) Insert(i types.Input, o Output) UTxO {
	next := u.ToMap()
	next[i] = o
	return UTxO{entries: next}
}

// Delete returns a UTxO with i removed, if present.
func (u UTxO) Delete(i types.Input) UTxO {
	next := u.ToMap()
	delete(next, i)
	return UTxO{entries: next}
}

// Get returns the output for i and whether it was present.
func (u UTxO) Get(i types.Input) (Output, bool) {
	o, ok := u.entries[i]
	return o, ok
}

// Domain returns the set of inputs present in the UTxO.
func (u UTxO) Domain() map[types.Input]struct{} {
	set := make(map[types.Input]struct{}, len(u.entries))
	for k := range u.entries {
		set[k] = struct{}{}
	}
	return set
}

// RestrictTo returns the sub-UTxO containing only the given inputs.
func (u UTxO) RestrictTo(inputs map[types.Input]struct{}) UTxO {
	next := make(map[types.Input]Output, len(inputs))
	for i := range inputs {
		if o, ok := u.entries[i]; ok {
			next[i] = o
		}
	}
	return UTxO{entries: next}
}

// RemoveInputs returns the UTxO with the given inputs removed.
func (u UTxO) RemoveInputs(inputs map[types.Input]struct{}) UTxO {
	next := u.ToMap()
	for i := range inputs {
		delete(next, i)
	}
	return UTxO{entries: next}
}

// Union returns the union of u and other. Entries in other take precedence
// on key collision.
func (u UTxO) Union(other UTxO) UTxO {
	next := u.ToMap()
	for k, v := range other.entries {
		next[k] = v
	}
	return UTxO{entries: next}
}

// Balance returns the sum of all output values in the UTxO.
func (u UTxO) Balance() Value {
	var total Value
	for _, o := range u.entries {
		total = total.Add(o.Value)
	}
	return total
}

// Size returns the number of entries in the UTxO.
func (u UTxO) Size() int {
	return len(u.entries)
}
