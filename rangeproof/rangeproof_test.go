package rangeproof

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaoKiet251/Cuproof/setup"
)

var testSetup struct {
	once sync.Once
	pp   setup.PublicParameters
	err  error
}

// testParams generates one fast-mode parameter set shared by the whole
// package test run.
func testParams(t *testing.T) setup.PublicParameters {
	t.Helper()
	testSetup.once.Do(func() {
		testSetup.pp, testSetup.err = setup.TrustedSetup(setup.ModeFast)
	})
	require.NoError(t, testSetup.err)
	return testSetup.pp
}

func TestProveVerify(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)
	assert.True(t, proof.Verify(pp.G, pp.H, pp.N))
}

func TestProveVerifyBounds(t *testing.T) {
	pp := testParams(t)
	a := new(big.Int)
	b := big.NewInt(1000)

	for _, v := range []int64{0, 100, 500, 999, 1000} {
		proof, err := Prove(big.NewInt(v), big.NewInt(123), a, b, pp.G, pp.H, pp.N)
		require.NoError(t, err, "v = %d", v)
		assert.True(t, proof.Verify(pp.G, pp.H, pp.N), "v = %d", v)
	}
}

func TestProveRejectsOutOfRange(t *testing.T) {
	pp := testParams(t)
	a := big.NewInt(10)
	b := big.NewInt(100)

	_, err := Prove(big.NewInt(5), big.NewInt(1), a, b, pp.G, pp.H, pp.N)
	assert.True(t, errors.Is(err, ErrRangeConstraint))

	_, err = Prove(big.NewInt(101), big.NewInt(1), a, b, pp.G, pp.H, pp.N)
	assert.True(t, errors.Is(err, ErrRangeConstraint))
}

// Both shifted witnesses are non-negative and congruent to 1 mod 4.
func TestWitnessCongruence(t *testing.T) {
	four := big.NewInt(4)
	cases := [][3]int64{{30, 10, 100}, {0, 0, 1000}, {1000, 0, 1000}, {7, 7, 7}}
	for _, c := range cases {
		v1, v2 := witnesses(big.NewInt(c[0]), big.NewInt(c[1]), big.NewInt(c[2]))
		assert.True(t, v1.Sign() > 0)
		assert.True(t, v2.Sign() > 0)
		assert.Equal(t, int64(1), new(big.Int).Mod(v1, four).Int64())
		assert.Equal(t, int64(1), new(big.Int).Mod(v2, four).Int64())
	}
}

func TestPadVector(t *testing.T) {
	d1 := [3]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	d2 := [3]*big.Int{big.NewInt(4), big.NewInt(5), big.NewInt(6)}

	d := padVector(d1, d2)
	require.Len(t, d, VectorSize)
	for i := range d {
		assert.Equal(t, int64(i%6+1), d[i].Int64(), "index %d", i)
	}
}

func TestIppShape(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)
	assert.Len(t, proof.InnerProductProof.Ls, IppRounds)
	assert.Len(t, proof.InnerProductProof.Rs, IppRounds)
}

func TestVerifyDeterministic(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)
	first := proof.Verify(pp.G, pp.H, pp.N)
	second := proof.Verify(pp.G, pp.H, pp.N)
	assert.Equal(t, first, second)
}

func TestVerifyRejectsTamperedTprime(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)

	proof.Tprime = new(big.Int).Xor(proof.Tprime, big.NewInt(1))
	assert.False(t, proof.Verify(pp.G, pp.H, pp.N))
}

func TestVerifyRejectsSwappedTaus(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)

	proof.Tau1, proof.Tau2 = proof.Tau2, proof.Tau1
	assert.False(t, proof.Verify(pp.G, pp.H, pp.N))
}

func TestVerifyRejectsWrongIppLength(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)

	proof.InnerProductProof.Ls = proof.InnerProductProof.Ls[:IppRounds-1]
	assert.False(t, proof.Verify(pp.G, pp.H, pp.N))
}

// Verification is total: a zero-value proof is rejected, not a panic.
func TestVerifyNilFields(t *testing.T) {
	pp := testParams(t)
	var proof RangeProof
	assert.False(t, proof.Verify(pp.G, pp.H, pp.N))
}
