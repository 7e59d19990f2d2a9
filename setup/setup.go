// Package setup produces and persists the public parameters (g, h, n)
// of the commitment scheme. The factorization of n is the trapdoor: it
// is discarded as soon as n is formed and never leaves this package.
package setup

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/CaoKiet251/Cuproof/prime"
	"github.com/CaoKiet251/Cuproof/rsagroup"
)

// Mode selects the parameter strength.
type Mode string

const (
	// ModeTrusted uses 1024-bit primes for a roughly 2048-bit modulus.
	ModeTrusted Mode = "trusted"
	// ModeFast uses 256-bit primes. Development only.
	ModeFast Mode = "fast"

	trustedPrimeBits = 1024
	fastPrimeBits    = 256
)

// ErrInvalidParameter reports an unknown mode or parameters that fail
// validation on load.
var ErrInvalidParameter = errors.New("setup: invalid parameter")

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// PublicParameters are the commitment bases and the modulus. They are
// immutable once produced and shared by all provers and verifiers.
type PublicParameters struct {
	G *big.Int
	H *big.Int
	N *big.Int
}

// TrustedSetup generates fresh public parameters. The primes p and q
// exist only inside this call.
func TrustedSetup(mode Mode) (PublicParameters, error) {
	var bits int
	switch mode {
	case ModeTrusted:
		bits = trustedPrimeBits
	case ModeFast:
		bits = fastPrimeBits
	default:
		return PublicParameters{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, mode)
	}

	p, err := prime.GenerateProbablePrime(bits)
	if err != nil {
		return PublicParameters{}, err
	}
	q, err := prime.GenerateProbablePrime(bits)
	if err != nil {
		return PublicParameters{}, err
	}
	for q.Cmp(p) == 0 {
		if q, err = prime.GenerateProbablePrime(bits); err != nil {
			return PublicParameters{}, err
		}
	}
	n := new(big.Int).Mul(p, q)

	g := sampleUnit(n)
	h := sampleUnit(n)
	for h.Cmp(g) == 0 {
		h = sampleUnit(n)
	}

	return PublicParameters{G: g, H: h, N: n}, nil
}

// sampleUnit draws uniformly from [2, n) until the draw is coprime to n.
func sampleUnit(n *big.Int) *big.Int {
	for {
		x := rsagroup.RandomInRange(big2, n)
		if rsagroup.GCD(x, n).Cmp(big1) == 0 {
			return x
		}
	}
}

// Validate checks the invariants a parameter set must satisfy before
// use: g and h in (1, n), coprime to n, and distinct.
func (pp PublicParameters) Validate() error {
	for _, base := range []*big.Int{pp.G, pp.H} {
		if base.Cmp(big1) <= 0 || base.Cmp(pp.N) >= 0 {
			return fmt.Errorf("%w: base outside (1, n)", ErrInvalidParameter)
		}
		if rsagroup.GCD(base, pp.N).Cmp(big1) != 0 {
			return fmt.Errorf("%w: base not coprime to modulus", ErrInvalidParameter)
		}
	}
	if pp.G.Cmp(pp.H) == 0 {
		return fmt.Errorf("%w: g equals h", ErrInvalidParameter)
	}
	return nil
}
