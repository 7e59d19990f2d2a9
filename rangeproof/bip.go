/*
 * Copyright (C) 2019 ING BANK N.V.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package rangeproof

import (
	"errors"
	"math/big"

	"github.com/ing-bank/zkrp/util/bn"

	"github.com/CaoKiet251/Cuproof/commitment"
	"github.com/CaoKiet251/Cuproof/rsagroup"
	"github.com/CaoKiet251/Cuproof/transcript"
)

/*
InnerProductProof contains the elements used to verify the Inner Product Proof.
Ls and Rs hold one commitment pair per halving level, deepest level first;
this stack order is part of the serialization contract.
*/
type InnerProductProof struct {
	Ls []*big.Int
	Rs []*big.Int
	A  *big.Int
	B  *big.Int
}

/*
proveInnerProduct calculates the Zero Knowledge Proof for the Inner Product
argument over integer vectors whose length is a power of two.
*/
func proveInnerProduct(a, b []*big.Int, g, h, n *big.Int) (InnerProductProof, error) {
	if len(a) != len(b) {
		return InnerProductProof{}, errors.New("size of first array argument must be equal to the second")
	}
	if len(a) == 0 || len(a)&(len(a)-1) != 0 {
		return InnerProductProof{}, errors.New("vector length must be a power of two")
	}
	return computeIppRecursive(a, b, g, h, n), nil
}

/*
computeIppRecursive is the main recursive function that will be used to
compute the inner product argument.
*/
func computeIppRecursive(a, b []*big.Int, g, h, n *big.Int) InnerProductProof {
	var proof InnerProductProof

	if len(a) == 1 {
		// recursion end
		proof.A = a[0]
		proof.B = b[0]
		return proof
	}

	nprime := len(a) / 2

	// cL = < a[:n'], b[n':] >
	cL, _ := ScalarProduct(a[:nprime], b[nprime:])
	// cR = < a[n':], b[:n'] >
	cR, _ := ScalarProduct(a[nprime:], b[:nprime])

	rhoL := rsagroup.RandomBits(blindingBits)
	rhoR := rsagroup.RandomBits(blindingBits)
	L := commitment.Commit(g, h, cL, rhoL, n)
	R := commitment.Commit(g, h, cR, rhoR, n)

	// Fiat-Shamir:
	u := bn.Mod(transcript.Challenge(L, R), n)

	// a' = a[:n'] + u . a[n':]
	auR, _ := VectorScalarMul(a[nprime:], u)
	aprime, _ := VectorAdd(a[:nprime], auR)
	// b' = b[:n'] + u . b[n':]
	buR, _ := VectorScalarMul(b[nprime:], u)
	bprime, _ := VectorAdd(b[:nprime], buR)

	// recursion first: the pair for this level is appended after the
	// deeper levels so that Ls and Rs come out deepest-first.
	proof = computeIppRecursive(aprime, bprime, g, h, n)
	proof.Ls = append(proof.Ls, L)
	proof.Rs = append(proof.Rs, R)
	return proof
}
