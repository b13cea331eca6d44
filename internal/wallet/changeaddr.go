package wallet

import (
	"fmt"

	klog "github.com/Klingon-tech/klingnet-coincore/internal/log"
	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
)

// ChangeAddressGenerator draws fresh change addresses along a wallet's
// BIP-44 internal chain, persisting the next index in the keystore so
// addresses are never reused across runs. It implements
// coinselect.AddressGenerator.
type ChangeAddressGenerator struct {
	keystore *Keystore
	wallet   string
	account  uint32
	seed     []byte
}

// NewChangeAddressGenerator returns a generator drawing from the given
// wallet's internal chain at the given BIP-44 account.
func NewChangeAddressGenerator(ks *Keystore, walletName string, account uint32, seed []byte) *ChangeAddressGenerator {
	return &ChangeAddressGenerator{keystore: ks, wallet: walletName, account: account, seed: seed}
}

// NewChangeAddress derives the next unused change address and persists the
// advanced index. Panics when reading or advancing the change index fails
// or key derivation fails: both indicate the host environment is broken in
// a way the coin-selection core has no way to recover from mid-run. A
// failure to record the derived address in the wallet's account list is
// logged as a warning and does not stop the call.
func (g *ChangeAddressGenerator) NewChangeAddress() types.Address {
	idx, err := g.keystore.GetChangeIndex(g.wallet)
	if err != nil {
		panic(fmt.Sprintf("wallet: read change index: %v", err))
	}

	master, err := NewMasterKey(g.seed)
	if err != nil {
		panic(fmt.Sprintf("wallet: derive master key: %v", err))
	}
	child, err := master.DeriveChangeAddress(g.account, idx)
	if err != nil {
		panic(fmt.Sprintf("wallet: derive change address: %v", err))
	}

	if err := g.keystore.IncrementChangeIndex(g.wallet); err != nil {
		panic(fmt.Sprintf("wallet: advance change index: %v", err))
	}

	addr := child.Address()
	if err := g.keystore.AddAccount(g.wallet, AccountEntry{
		Index:   idx,
		Change:  ChangeInternal,
		Name:    "change",
		Address: addr.String(),
	}); err != nil {
		klog.Wallet.Warn().Err(err).Str("wallet", g.wallet).Msg("record change account")
	}

	klog.Wallet.Debug().Str("wallet", g.wallet).Uint32("index", idx).Str("address", addr.String()).Msg("derived change address")
	return addr
}
