// Package txhash provides the transaction-hash generator a selection run's
// Capabilities plug into coinselect.HashGenerator.
package txhash

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/Klingon-tech/klingnet-coincore/pkg/crypto"
	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
)

// Generator produces fresh transaction hashes by combining a per-generator
// monotonic counter with a random salt, then hashing the pair with BLAKE3.
// The counter guarantees distinct inputs across one Generator's calls even
// if crypto/rand were ever to repeat; the salt keeps hashes unpredictable
// to an observer watching the counter alone.
type Generator struct {
	counter atomic.Uint64
}

// New returns a Generator with its counter at zero.
func New() *Generator {
	return &Generator{}
}

// NewTxHash implements coinselect.HashGenerator.
func (g *Generator) NewTxHash() types.Hash {
	n := g.counter.Add(1)

	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		panic(fmt.Sprintf("txhash: crypto/rand unavailable: %v", err))
	}

	buf := make([]byte, 8+len(salt))
	binary.LittleEndian.PutUint64(buf, n)
	copy(buf[8:], salt[:])

	return crypto.Hash(buf)
}
