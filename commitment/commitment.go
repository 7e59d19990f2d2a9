// Package commitment implements Pedersen commitments over Z_n^*.
// A commitment g^m · h^r mod n hides m statistically and binds it
// computationally under the hardness of factoring n.
package commitment

import (
	"math/big"

	"github.com/CaoKiet251/Cuproof/rsagroup"
)

// BlindingBits is the width of sampled blinding factors.
const BlindingBits = 256

// Commit computes g^m · h^r mod n.
func Commit(g, h, m, r, n *big.Int) *big.Int {
	G := rsagroup.New(n)
	return G.Mul(G.Exp(g, m), G.Exp(h, r))
}

// CommitValue commits to m under a freshly sampled blinding factor
// r ∈ [0, 2^256) and returns both the commitment and r.
func CommitValue(g, h, m, n *big.Int) (*big.Int, *big.Int) {
	r := rsagroup.RandomBits(BlindingBits)
	return Commit(g, h, m, r, n), r
}
