// Package exec runs a compiled plan against the host edge relation,
// maintaining per-tuple multiplicities and escalating to arbitrary
// precision on predicted overflow. Ported from
// original_source/pact/pact/naive_exec.py.
package exec

import (
	"errors"
	"math"
	"math/big"
)

// ErrIntegerOverflow is returned when a COUNT_EXT sum or SUM_COUNT product
// would overflow fixed-width 64-bit counts and graceful big-integer
// promotion is disabled.
var ErrIntegerOverflow = errors.New("exec: integer overflow, graceful_bigint disabled")

// overflowThreshold mirrors naive_exec.py's crude float-log safety margin:
// bit budgets at or above this are treated as unsafe for int64 arithmetic.
const overflowThreshold = 62.8

// Multiplicity is a tagged count value: Small holds a fixed-width count
// when Big is nil; once promoted, Big holds the arbitrary-precision value
// and Small is no longer meaningful.
type Multiplicity struct {
	Small int64
	Big   *big.Int
}

// SmallMult returns a fixed-width multiplicity.
func SmallMult(n int64) Multiplicity { return Multiplicity{Small: n} }

// BigMult returns an arbitrary-precision multiplicity.
func BigMult(n *big.Int) Multiplicity { return Multiplicity{Big: n} }

// IsBig reports whether m has been promoted to arbitrary precision.
func (m Multiplicity) IsBig() bool { return m.Big != nil }

// AsBigInt returns m's value as a *big.Int regardless of promotion state.
func (m Multiplicity) AsBigInt() *big.Int {
	if m.Big != nil {
		return m.Big
	}
	return big.NewInt(m.Small)
}

// Int64 returns m's value truncated to int64; only safe when the caller
// knows m is not (or no longer) promoted.
func (m Multiplicity) Int64() int64 {
	if m.Big != nil {
		return m.Big.Int64()
	}
	return m.Small
}

func bitsOf(n int64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Log2(float64(n))
}

// expectSumOverflow predicts whether summing count values of the given
// maximum and count would exceed the safe int64 threshold.
func expectSumOverflow(maxVal int64, n int) bool {
	if n == 0 {
		return false
	}
	return bitsOf(maxVal)+math.Log2(float64(n)) >= overflowThreshold
}

// expectMulOverflow predicts whether a*b would exceed the safe int64
// threshold.
func expectMulOverflow(a, b int64) bool {
	return bitsOf(a)+bitsOf(b) >= overflowThreshold
}

// SumMultiplicities computes the sum of vals under the overflow policy: if
// any value is already big, or the sum is predicted to overflow int64, the
// result is promoted (or an error is returned when graceful is false).
func SumMultiplicities(vals []Multiplicity, graceful bool) (Multiplicity, error) {
	anyBig := false
	maxSmall := int64(0)
	for _, v := range vals {
		if v.IsBig() {
			anyBig = true
			continue
		}
		if v.Small > maxSmall {
			maxSmall = v.Small
		}
	}

	if !anyBig && !expectSumOverflow(maxSmall, len(vals)) {
		var total int64
		for _, v := range vals {
			total += v.Small
		}
		return SmallMult(total), nil
	}

	if !graceful {
		return Multiplicity{}, ErrIntegerOverflow
	}

	total := big.NewInt(0)
	for _, v := range vals {
		total.Add(total, v.AsBigInt())
	}
	return BigMult(total), nil
}

// MulMultiplicities computes a*b under the overflow policy.
func MulMultiplicities(a, b Multiplicity, graceful bool) (Multiplicity, error) {
	if !a.IsBig() && !b.IsBig() && !expectMulOverflow(a.Small, b.Small) {
		return SmallMult(a.Small * b.Small), nil
	}

	if !graceful {
		return Multiplicity{}, ErrIntegerOverflow
	}

	product := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
	return BigMult(product), nil
}

// MaxMultiplicity returns the largest of vals; magnitude never grows beyond
// the inputs so no overflow check is needed.
func MaxMultiplicity(vals []Multiplicity) Multiplicity {
	best := vals[0]
	for _, v := range vals[1:] {
		if v.AsBigInt().Cmp(best.AsBigInt()) > 0 {
			best = v
		}
	}
	return best
}
