// Package wallet implements HD wallet functionality.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// GenerateMnemonicAndSeed generates a fresh mnemonic and immediately derives
// its seed, the pairing every wallet-creation flow needs: the mnemonic is
// shown to the user for backup, the seed is what actually gets encrypted
// into the keystore.
func GenerateMnemonicAndSeed(passphrase string) (mnemonic string, seed []byte, err error) {
	mnemonic, err = GenerateMnemonic()
	if err != nil {
		return "", nil, err
	}
	seed, err = SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return "", nil, err
	}
	return mnemonic, seed, nil
}
