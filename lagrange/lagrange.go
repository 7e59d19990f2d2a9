// Package lagrange decomposes integers congruent to 1 mod 4 into sums
// of three squares. Existence is guaranteed by Legendre's three-square
// theorem: every non-negative integer not of the form 4^a(8b+7) is a
// sum of three squares, and integers ≡ 1 (mod 4) are never of that form.
package lagrange

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/CaoKiet251/Cuproof/rsagroup"
)

// exhaustiveBitBound is the largest input searched exhaustively.
const exhaustiveBitBound = 64

// heuristicBudget bounds the randomized search; the search has no
// proven termination bound, so exhaustion is surfaced as an error.
var heuristicBudget = 1 << 20

var (
	// ErrNoDecomposition reports an exhausted search budget.
	ErrNoDecomposition = errors.New("lagrange: no decomposition found within budget")
	// ErrInvalidParameter reports an input outside the supported class.
	ErrInvalidParameter = errors.New("lagrange: input must be non-negative and 1 mod 4")

	big1 = big.NewInt(1)
	big4 = big.NewInt(4)
)

// FindThreeSquares returns (d0, d1, d2) with d0² + d1² + d2² = m for
// m ≥ 0 with m ≡ 1 (mod 4). m = 0 is accepted for totality.
func FindThreeSquares(m *big.Int) ([3]*big.Int, error) {
	var zero [3]*big.Int
	if m.Sign() < 0 {
		return zero, fmt.Errorf("%w: negative input", ErrInvalidParameter)
	}
	if m.Sign() == 0 {
		return [3]*big.Int{new(big.Int), new(big.Int), new(big.Int)}, nil
	}
	if new(big.Int).Mod(m, big4).Cmp(big1) != 0 {
		return zero, fmt.Errorf("%w: %s mod 4 != 1", ErrInvalidParameter, m)
	}
	if m.BitLen() <= exhaustiveBitBound {
		return searchExhaustive(m)
	}
	return searchHeuristic(m)
}

// searchExhaustive scans d0 up to ⌊√m⌋ and d1 up to ⌊√(m − d0²)⌋,
// testing the remainder for squareness.
func searchExhaustive(m *big.Int) ([3]*big.Int, error) {
	d0Max := new(big.Int).Sqrt(m)
	for d0 := new(big.Int); d0.Cmp(d0Max) <= 0; d0.Add(d0, big1) {
		rem0 := new(big.Int).Mul(d0, d0)
		rem0.Sub(m, rem0)
		d1Max := new(big.Int).Sqrt(rem0)
		for d1 := new(big.Int); d1.Cmp(d1Max) <= 0; d1.Add(d1, big1) {
			rem1 := new(big.Int).Mul(d1, d1)
			rem1.Sub(rem0, rem1)
			if d2, ok := exactSqrt(rem1); ok {
				return [3]*big.Int{new(big.Int).Set(d0), new(big.Int).Set(d1), d2}, nil
			}
		}
	}
	// Unreachable for m ≡ 1 (mod 4) by the three-square theorem.
	return [3]*big.Int{}, fmt.Errorf("%w: exhaustive search failed for %s", ErrNoDecomposition, m)
}

// searchHeuristic samples candidate legs at random and tests the
// remainder, giving up after heuristicBudget attempts.
func searchHeuristic(m *big.Int) ([3]*big.Int, error) {
	d0Bound := new(big.Int).Sqrt(m)
	d0Bound.Add(d0Bound, big1)
	for i := 0; i < heuristicBudget; i++ {
		d0 := rsagroup.RandomInRange(new(big.Int), d0Bound)
		rem0 := new(big.Int).Mul(d0, d0)
		rem0.Sub(m, rem0)

		d1Bound := new(big.Int).Sqrt(rem0)
		d1Bound.Add(d1Bound, big1)
		d1 := rsagroup.RandomInRange(new(big.Int), d1Bound)
		rem1 := new(big.Int).Mul(d1, d1)
		rem1.Sub(rem0, rem1)

		if d2, ok := exactSqrt(rem1); ok {
			return [3]*big.Int{d0, d1, d2}, nil
		}
	}
	return [3]*big.Int{}, fmt.Errorf("%w: %d attempts", ErrNoDecomposition, heuristicBudget)
}

// exactSqrt returns the integer square root of x and whether it is exact.
func exactSqrt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(x)
	square := new(big.Int).Mul(r, r)
	return r, square.Cmp(x) == 0
}
