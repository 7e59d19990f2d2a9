// Package transcript derives Fiat–Shamir challenges. A challenge is the
// SHA-256 digest of the concatenated big-endian encodings of the inputs,
// reinterpreted as an unsigned big-endian integer. The input order is
// part of the protocol contract; callers reduce modulo n at the point
// of use.
package transcript

import (
	"crypto/sha256"
	"math/big"

	"github.com/ing-bank/zkrp/util/byteconversion"
)

// Challenge hashes the ordered inputs into a challenge integer.
func Challenge(xs ...*big.Int) *big.Int {
	digest := sha256.New()
	for _, x := range xs {
		digest.Write(x.Bytes())
	}
	out := digest.Sum(nil)
	c, _ := byteconversion.FromByteArray(out)
	return c
}
