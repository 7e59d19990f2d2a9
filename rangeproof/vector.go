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

	"github.com/CaoKiet251/Cuproof/rsagroup"
)

// The protocol's vector relations hold over the integers, so none of
// these helpers reduce their results.

/*
VectorAdd computes vector addition componentwisely.
*/
func VectorAdd(a, b []*big.Int) ([]*big.Int, error) {
	var (
		result  []*big.Int
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("size of first argument is different from size of second argument")
	}
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Add(a[i], b[i])
		i = i + 1
	}
	return result, nil
}

/*
VectorScalarMul computes vector scalar multiplication componentwisely.
*/
func VectorScalarMul(a []*big.Int, b *big.Int) ([]*big.Int, error) {
	var (
		result []*big.Int
		i, n   int64
	)
	n = int64(len(a))
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Multiply(a[i], b)
		i = i + 1
	}
	return result, nil
}

/*
VectorAddConst adds a constant to every component.
*/
func VectorAddConst(a []*big.Int, c *big.Int) []*big.Int {
	result := make([]*big.Int, len(a))
	for i := range result {
		result[i] = new(big.Int).Add(a[i], c)
	}
	return result
}

/*
ScalarProduct computes the inner product between a and b.
*/
func ScalarProduct(a, b []*big.Int) (*big.Int, error) {
	var (
		result  *big.Int
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("size of first argument is different from size of second argument")
	}
	i = 0
	result = new(big.Int)
	for i < n {
		result = bn.Add(result, bn.Multiply(a[i], b[i]))
		i = i + 1
	}
	return result, nil
}

/*
VectorSum adds up the components of a.
*/
func VectorSum(a []*big.Int) *big.Int {
	result := new(big.Int)
	for _, ai := range a {
		result = bn.Add(result, ai)
	}
	return result
}

/*
sampleRandomVector generates a vector composed by random big numbers.
*/
func sampleRandomVector(n int) []*big.Int {
	s := make([]*big.Int, n)
	for i := range s {
		s[i] = rsagroup.RandomBits(blindingBits)
	}
	return s
}
