// Package rsagroup provides arbitrary-precision arithmetic over the
// multiplicative group of residues modulo an RSA composite. All values
// are non-negative and Mod always returns the mathematical residue in
// [0, n).
package rsagroup

import (
	"crypto/rand"
	"math/big"
)

var big1 = big.NewInt(1)

// Group performs arithmetic in Z_n^* for a composite modulus n.
// Element inversion is deliberately absent: with n = p·q and the factors
// destroyed, inverses are not generally computable by honest parties.
type Group struct {
	n *big.Int
}

// New wraps a modulus n in a Group.
func New(n *big.Int) *Group {
	return &Group{n: n}
}

// N returns the group modulus.
func (g *Group) N() *big.Int {
	return g.n
}

// Mul returns x · y mod n.
func (g *Group) Mul(x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, g.n)
}

// Exp returns x^e mod n.
func (g *Group) Exp(x, e *big.Int) *big.Int {
	return new(big.Int).Exp(x, e, g.n)
}

// Mod returns the residue of x in [0, n).
func Mod(x, n *big.Int) *big.Int {
	return new(big.Int).Mod(x, n)
}

// ModExp returns base^exp mod n.
func ModExp(base, exp, n *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, n)
}

// GCD returns the greatest common divisor of x and y.
func GCD(x, y *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, x, y)
}

// RandomInRange samples uniformly from [lo, hi).
func RandomInRange(lo, hi *big.Int) *big.Int {
	width := new(big.Int).Sub(hi, lo)
	r, err := rand.Int(rand.Reader, width)
	if err != nil {
		panic("rsagroup: random source failure: " + err.Error())
	}
	return r.Add(r, lo)
}

// RandomBits samples uniformly from [0, 2^k).
func RandomBits(k uint) *big.Int {
	bound := new(big.Int).Lsh(big1, k)
	r, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic("rsagroup: random source failure: " + err.Error())
	}
	return r
}

// BitLen returns the length of x in bits.
func BitLen(x *big.Int) int {
	return x.BitLen()
}
