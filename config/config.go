// Package config handles coin-selection runtime configuration: which
// policy a wallet defaults to, and the BIP-44 account it draws change
// addresses from.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// PolicyName identifies one of coinselect's selection policies by name, for
// config files and CLI flags where a coinselect.Policy value itself can't
// appear directly.
type PolicyName string

const (
	PolicyExactSingleMatch PolicyName = "exact"
	PolicyLargestFirst     PolicyName = "largest-first"
	PolicyRandom           PolicyName = "random"
)

// SelectionConfig holds the wallet's default coin-selection behavior.
type SelectionConfig struct {
	Policy        PolicyName `conf:"selection.policy"`
	PrivacyMode   bool       `conf:"selection.privacy"` // only consulted when Policy == PolicyRandom
	ChangeAccount uint32     `conf:"selection.account"` // BIP-44 account index for change addresses
	DataDir       string     `conf:"datadir"`
}

// Default returns the recommended selection configuration: largest-first
// with privacy mode enabled, deriving change from account 0.
func Default() SelectionConfig {
	return SelectionConfig{
		Policy:        PolicyLargestFirst,
		PrivacyMode:   true,
		ChangeAccount: 0,
		DataDir:       DefaultDataDir(),
	}
}

// Validate reports whether the configuration names a known policy.
func (c SelectionConfig) Validate() error {
	switch c.Policy {
	case PolicyExactSingleMatch, PolicyLargestFirst, PolicyRandom:
		return nil
	default:
		return fmt.Errorf("config: unknown selection policy %q", c.Policy)
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.coincore
//	macOS:   ~/Library/Application Support/Coincore
//	Windows: %APPDATA%\Coincore
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coincore"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Coincore")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Coincore")
		}
		return filepath.Join(home, "AppData", "Roaming", "Coincore")
	default:
		return filepath.Join(home, ".coincore")
	}
}

// KeystoreDir returns the keystore directory under DataDir.
func (c SelectionConfig) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}
