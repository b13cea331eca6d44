package coinselect

import (
	"fmt"
	"math"
)

// Value is a non-negative coin amount. A uint64 is wide enough that
// realistic wallet balances cannot overflow within a single transaction;
// Add still guards against it explicitly.
type Value uint64

// Add returns v + other, panicking on overflow. Overflow here means a
// caller handed the core a UTxO whose balance cannot be represented —
// a programmer error, not a recoverable Failure.
func (v Value) Add(other Value) Value {
	if v > math.MaxUint64-other {
		panic(fmt.Sprintf("coinselect: value overflow adding %d and %d", v, other))
	}
	return v + other
}

// Sub returns v - other. Panics if other > v; callers are expected to
// check coverage before subtracting (see DistributeFee and the policies,
// which only subtract within ranges they've already verified).
func (v Value) Sub(other Value) Value {
	if other > v {
		panic(fmt.Sprintf("coinselect: value underflow subtracting %d from %d", other, v))
	}
	return v - other
}
