// Package prime generates probable primes at a fixed bit width using
// trial division followed by Miller–Rabin.
package prime

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/otiai10/primes"

	"github.com/CaoKiet251/Cuproof/rsagroup"
)

const (
	// millerRabinRounds random witnesses bound the error by 2^-80.
	millerRabinRounds = 40
	// smallPrimeBound covers at least every prime up to 37.
	smallPrimeBound = 40
	primeCacheBound = 1000
	// MinBits is the smallest accepted prime width.
	MinBits = 16
)

// ErrInvalidParameter reports a bit width below MinBits.
var ErrInvalidParameter = errors.New("prime: invalid bit width")

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

func init() {
	// init primes cache
	_ = primes.Globally.Until(primeCacheBound)
}

// GenerateProbablePrime returns a k-bit integer that Miller–Rabin
// declares probably prime with error at most 2^-80.
func GenerateProbablePrime(k int) (*big.Int, error) {
	if k < MinBits {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidParameter, k)
	}
	for {
		p := sampleCandidate(k)
		if !passesTrialDivision(p) {
			continue
		}
		if isProbablePrime(p) {
			return p, nil
		}
	}
}

// sampleCandidate returns a k-bit odd integer with the top bit set.
func sampleCandidate(k int) *big.Int {
	p := rsagroup.RandomBits(uint(k))
	p.SetBit(p, k-1, 1)
	p.SetBit(p, 0, 1)
	return p
}

func passesTrialDivision(p *big.Int) bool {
	rem := new(big.Int)
	for _, q := range primes.Until(smallPrimeBound).List() {
		if rem.Mod(p, big.NewInt(q)).Sign() == 0 {
			return false
		}
	}
	return true
}

// isProbablePrime runs Miller–Rabin with millerRabinRounds uniformly
// random witnesses from [2, p-2].
func isProbablePrime(p *big.Int) bool {
	pm1 := new(big.Int).Sub(p, big1)

	// p - 1 = d · 2^s with d odd.
	s := 0
	d := new(big.Int).Set(pm1)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for i := 0; i < millerRabinRounds; i++ {
		a := rsagroup.RandomInRange(big2, pm1)
		if !witnessPasses(a, d, s, p, pm1) {
			return false
		}
	}
	return true
}

func witnessPasses(a, d *big.Int, s int, p, pm1 *big.Int) bool {
	x := rsagroup.ModExp(a, d, p)
	if x.Cmp(big1) == 0 || x.Cmp(pm1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x.Mul(x, x)
		x.Mod(x, p)
		if x.Cmp(pm1) == 0 {
			return true
		}
	}
	return false
}
