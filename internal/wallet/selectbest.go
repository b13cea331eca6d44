package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-coincore/internal/coinselect"
	klog "github.com/Klingon-tech/klingnet-coincore/internal/log"
)

// SelectBest funds a single goal with whichever of the single-exact-match and
// largest-first policies produces less change. Single
// exact match is tried first since it wastes nothing when it applies; when
// it doesn't (no UTxO happens to equal the goal value exactly), largest-
// first's overshoot is the only option.
//
// This mirrors the "try smallest-single, fall back to greedy accumulation,
// keep whichever wastes less" shape older wallet coin selectors use, built
// on the policy framework instead of a bespoke UTXO slice.
func SelectBest(caps coinselect.Capabilities, utxo coinselect.UTxO, goal coinselect.Goal) (*coinselect.Transaction, coinselect.TxStats, error) {
	exact, exactStats, exactErr := coinselect.SelectInputs(coinselect.ExactSingleMatch, caps, utxo, []coinselect.Goal{goal})
	if exactErr == nil {
		klog.Wallet.Debug().Uint64("goal", uint64(goal.Output.Value)).Msg("covered by exact single match")
		return exact, exactStats, nil
	}

	greedy, greedyStats, greedyErr := coinselect.SelectInputs(coinselect.LargestFirst, caps, utxo, []coinselect.Goal{goal})
	if greedyErr != nil {
		return nil, coinselect.TxStats{}, fmt.Errorf("select inputs for %d: %w", goal.Output.Value, greedyErr)
	}
	klog.Wallet.Debug().Uint64("goal", uint64(goal.Output.Value)).Msg("covered by largest-first fallback")
	return greedy, greedyStats, nil
}
