package coinselect

import "math/big"

// DistributeFee amends each goal's output value according to its expense
// regulation's share of the estimated fee.
//
// Filters on outVal != 0, keeping non-zero outputs; a filter that instead
// dropped non-zero outputs would contradict the surrounding solvency
// arithmetic, so that reading is rejected here.
//
// Known limitation: the NeedsExtraInputsToCoverError raised by the caller
// (RunPolicy) always tags its slack as SenderPaysFees regardless of which
// regulations were actually in play for this batch of goals — the "slack
// comes from the sender" framing can be inaccurate when a goal used a
// partial receiver regulation. Documented, not fixed.
func DistributeFee(estimator FeeEstimator, goals []Goal, expectedInputsLen int) ([]Output, error) {
	outVals := make([]Value, len(goals))
	for i, g := range goals {
		outVals[i] = g.Output.Value
	}
	upperBoundFee := estimator(expectedInputsLen, outVals)
	if int64(upperBoundFee) < 0 {
		panic("coinselect: fee estimator returned a negative value")
	}

	var epsilon Value
	if len(goals) == 0 {
		epsilon = upperBoundFee
	} else {
		epsilon = upperBoundFee / Value(len(goals))
	}

	results := make([]Output, 0, len(goals))
	for _, g := range goals {
		out, err := regulateOutput(g.Regulation, g.Output, epsilon)
		if err != nil {
			return nil, err
		}
		if out.Value != 0 {
			results = append(results, out)
		}
	}
	return results, nil
}

func regulateOutput(reg ExpenseRegulation, out Output, epsilon Value) (Output, error) {
	r := reg.Ratio()
	switch {
	case r == 0.0:
		return Output{Address: out.Address, Value: out.Value.Add(epsilon)}, nil
	case r > 0.0 && r <= 1.0:
		d := ceilRatio(epsilon, r)
		if out.Value < d {
			return Output{}, &InsufficientFundsToCoverFeeError{Regulation: reg, Output: out}
		}
		return Output{Address: out.Address, Value: out.Value.Sub(d)}, nil
	default:
		panic("coinselect: expense regulation ratio out of [0.0, 1.0]")
	}
}

// ceilRatio computes ceil(epsilon * ratio) as an integer, avoiding the
// float rounding pitfalls a naive math.Ceil(float64(epsilon)*ratio) would
// hit near integer boundaries: it expresses ratio as the exact fraction its
// float64 value represents and rounds up in integer arithmetic.
func ceilRatio(epsilon Value, ratio float64) Value {
	r := new(big.Rat).SetFloat64(ratio)
	product := new(big.Int).Mul(new(big.Int).SetUint64(uint64(epsilon)), r.Num())
	q, m := new(big.Int).QuoRem(product, r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return Value(q.Uint64())
}
