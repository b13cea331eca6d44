// coincore-demo is a command-line demonstration of the coin-selection
// core: it creates or unlocks a wallet, builds a sample UTxO, runs the
// configured policy against one or more payment goals, and prints the
// resulting transaction and statistics as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/Klingon-tech/klingnet-coincore/config"
	"github.com/Klingon-tech/klingnet-coincore/internal/coinselect"
	"github.com/Klingon-tech/klingnet-coincore/internal/txhash"
	"github.com/Klingon-tech/klingnet-coincore/internal/wallet"
	"github.com/Klingon-tech/klingnet-coincore/pkg/types"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "create-wallet":
		cmdCreateWallet(args)
	case "select":
		cmdSelect(args)
	case "list-wallets":
		cmdListWallets(args)
	case "accounts":
		cmdAccounts(args)
	case "delete-wallet":
		cmdDeleteWallet(args)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: coincore-demo <command> [flags]

Commands:
  create-wallet --name <n>              Create a new wallet in the keystore
  select --wallet <n> --goal <value> [--goal <value> ...]
                                         Run coin selection against a sample UTxO
  list-wallets                          List wallet names in the keystore
  accounts --wallet <n>                 List derived change accounts for a wallet
  delete-wallet --wallet <n>            Remove a wallet file from the keystore
`)
}

// ── create-wallet ──────────────────────────────────────────────────────

func cmdCreateWallet(args []string) {
	fs := flag.NewFlagSet("create-wallet", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: coincore-demo create-wallet --name <name>")
	}

	cfg := config.Default()

	mnemonic, seed, err := wallet.GenerateMnemonicAndSeed("")
	if err != nil {
		fatal("generate wallet seed: %v", err)
	}
	fmt.Println("Mnemonic (write this down!):")
	fmt.Printf("  %s\n\n", mnemonic)

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("create keystore: %v", err)
	}
	if err := ks.Create(*name, seed, password, wallet.DefaultParams()); err != nil {
		fatal("create wallet: %v", err)
	}

	for i := range seed {
		seed[i] = 0
	}

	fmt.Printf("Wallet created: %s\n", *name)
}

// ── select ──────────────────────────────────────────────────────────────

type selectionResult struct {
	Inputs  []types.Input      `json:"inputs"`
	Outputs []coinselect.Output `json:"outputs"`
	Fee     coinselect.Value   `json:"fee"`
	Hash    types.Hash         `json:"hash"`
	Stats   coinselect.TxStats `json:"stats"`
}

func cmdSelect(args []string) {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	policyName := fs.String("policy", string(config.PolicyLargestFirst), "exact | largest-first | random")
	privacy := fs.Bool("privacy", true, "enable privacy-aware change sizing for the random policy")
	var goals goalFlags
	fs.Var(&goals, "goal", "payment goal value; repeatable")
	fs.Parse(args)

	if *walletName == "" || len(goals) == 0 {
		fatal("Usage: coincore-demo select --wallet <name> --goal <value> [--goal <value> ...]")
	}

	cfg := config.Default()
	if err := (config.SelectionConfig{Policy: config.PolicyName(*policyName)}).Validate(); err != nil {
		fatal("%v", err)
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	seed, err := ks.Load(*walletName, password)
	if err != nil {
		fatal("unlock wallet: %v", err)
	}
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	caps := coinselect.Capabilities{
		FeeEstimator:    sampleFeeEstimator,
		AddressGen:      wallet.NewChangeAddressGenerator(ks, *walletName, cfg.ChangeAccount, seed),
		HashGen:         txhash.New(),
		Rand:            coinselect.CryptoRandSource{},
		TreasuryAddress: treasuryAddress(),
	}

	policy, err := resolvePolicy(config.PolicyName(*policyName), *privacy)
	if err != nil {
		fatal("%v", err)
	}

	utxo := sampleUTxO()
	tx, stats, err := coinselect.SelectInputs(policy, caps, utxo, goals.toGoals())
	if err != nil {
		fatal("select inputs: %v", err)
	}

	out := selectionResult{
		Outputs: tx.Outputs,
		Fee:     tx.Fee,
		Hash:    tx.Hash,
		Stats:   stats,
	}
	for i := range tx.Inputs {
		out.Inputs = append(out.Inputs, i)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatal("encode result: %v", err)
	}
}

// ── list-wallets / accounts / delete-wallet ──────────────────────────────

func cmdListWallets(args []string) {
	fs := flag.NewFlagSet("list-wallets", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	names, err := ks.List()
	if err != nil {
		fatal("list wallets: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		fatal("encode result: %v", err)
	}
}

func cmdAccounts(args []string) {
	fs := flag.NewFlagSet("accounts", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	fs.Parse(args)

	if *walletName == "" {
		fatal("Usage: coincore-demo accounts --wallet <name>")
	}

	cfg := config.Default()
	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	accounts, err := ks.ListAccounts(*walletName)
	if err != nil {
		fatal("list accounts: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		fatal("encode result: %v", err)
	}
}

func cmdDeleteWallet(args []string) {
	fs := flag.NewFlagSet("delete-wallet", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	fs.Parse(args)

	if *walletName == "" {
		fatal("Usage: coincore-demo delete-wallet --wallet <name>")
	}

	cfg := config.Default()
	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	if err := ks.Delete(*walletName); err != nil {
		fatal("delete wallet: %v", err)
	}
	fmt.Printf("Wallet deleted: %s\n", *walletName)
}

func resolvePolicy(name config.PolicyName, privacy bool) (coinselect.Policy, error) {
	switch name {
	case config.PolicyExactSingleMatch:
		return coinselect.ExactSingleMatch, nil
	case config.PolicyLargestFirst:
		return coinselect.LargestFirst, nil
	case config.PolicyRandom:
		if privacy {
			return coinselect.Random(coinselect.PrivacyModeOn), nil
		}
		return coinselect.Random(coinselect.PrivacyModeOff), nil
	default:
		return coinselect.Policy{}, fmt.Errorf("unknown policy %q", name)
	}
}

// sampleFeeEstimator charges a flat per-input, per-output fee, loosely
// modeling the per-byte cost a real fee estimator would compute from
// serialized transaction size.
func sampleFeeEstimator(numInputs int, outputs []coinselect.Value) coinselect.Value {
	const perInput, perOutput = 10, 5
	return coinselect.Value(numInputs*perInput + len(outputs)*perOutput)
}

// sampleUTxO is a small fixed UTxO used to make the demo self-contained
// without a real chain to scan.
func sampleUTxO() coinselect.UTxO {
	addr := treasuryAddress()
	u := coinselect.EmptyUTxO()
	sizes := []uint64{500, 1200, 75, 3000, 220}
	for i, v := range sizes {
		var h types.Hash
		h[0] = byte(i + 1)
		u = u.Insert(types.Input{TxID: h}, coinselect.Output{Address: addr, Value: coinselect.Value(v)})
	}
	return u
}

func treasuryAddress() types.Address {
	var a types.Address
	a[0] = 0xFE
	return a
}

// goalFlags collects repeated --goal flags into payment goals that send
// sender-pays-fee outputs to demo recipient addresses, one per goal
// (first byte 0x10, 0x11, ...).
type goalFlags []uint64

func (g *goalFlags) String() string {
	return fmt.Sprintf("%v", *g)
}

func (g *goalFlags) Set(s string) error {
	var v uint64
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fmt.Errorf("invalid goal value %q: %w", s, err)
	}
	*g = append(*g, v)
	return nil
}

func (g goalFlags) toGoals() []coinselect.Goal {
	goals := make([]coinselect.Goal, len(g))
	for i, v := range g {
		var addr types.Address
		addr[0] = byte(0x10 + i)
		goals[i] = coinselect.Goal{Regulation: coinselect.SenderPaysFees, Output: coinselect.Output{Address: addr, Value: coinselect.Value(v)}}
	}
	return goals
}

// ── shared CLI helpers ──────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
