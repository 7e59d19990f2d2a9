package rangeproof

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaoKiet251/Cuproof/util"
)

func syntheticProof() RangeProof {
	scalar := func(v int64) *big.Int { return big.NewInt(v) }
	proof := RangeProof{
		A: scalar(10), S: scalar(11), T1: scalar(12), T2: scalar(13),
		Taux: scalar(14), Mu: scalar(15), Tprime: scalar(16),
		C: scalar(17), Cv1: scalar(18), Cv2: scalar(19),
		T0: scalar(20), T1c: scalar(21), T2c: scalar(22),
		Tau1: scalar(23), Tau2: scalar(0),
	}
	for i := int64(0); i < IppRounds; i++ {
		proof.InnerProductProof.Ls = append(proof.InnerProductProof.Ls, scalar(30+i))
		proof.InnerProductProof.Rs = append(proof.InnerProductProof.Rs, scalar(40+i))
	}
	proof.InnerProductProof.A = scalar(50)
	proof.InnerProductProof.B = scalar(51)
	return proof
}

func TestProofRoundTrip(t *testing.T) {
	proof := syntheticProof()

	body := proof.Marshal()
	parsed, err := Unmarshal(body)
	require.NoError(t, err)

	// Canonical form is stable byte-for-byte.
	assert.Equal(t, body, parsed.Marshal())
	assert.Equal(t, proof, parsed)
}

func TestProofRoundTripReal(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)

	parsed, err := Unmarshal(proof.Marshal())
	require.NoError(t, err)
	assert.Equal(t, proof.Marshal(), parsed.Marshal())
	assert.True(t, parsed.Verify(pp.G, pp.H, pp.N))
}

func TestUnmarshalTolerantWhitespace(t *testing.T) {
	proof := syntheticProof()
	loose := strings.ReplaceAll(string(proof.Marshal()), ": ", ":   ")
	loose = "\n" + loose + "\n\n"

	parsed, err := Unmarshal([]byte(loose))
	require.NoError(t, err)
	assert.Equal(t, proof.Marshal(), parsed.Marshal())
}

func TestZeroScalarRoundTrip(t *testing.T) {
	proof := syntheticProof()
	body := string(proof.Marshal())
	assert.Contains(t, body, "tau2: 0x00\n", "zero emits as 0x00")

	// The short form 0x is accepted on input.
	parsed, err := Unmarshal([]byte(strings.Replace(body, "tau2: 0x00", "tau2: 0x", 1)))
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Tau2.Sign())
}

// Changing the last hex digit of the t_hat body must flip the verdict.
func TestTamperedProofFile(t *testing.T) {
	pp := testParams(t)

	proof, err := Prove(big.NewInt(30), big.NewInt(42),
		big.NewInt(10), big.NewInt(100), pp.G, pp.H, pp.N)
	require.NoError(t, err)

	lines := strings.Split(string(proof.Marshal()), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "t_hat: 0x") {
			last := line[len(line)-1]
			flip := byte('0')
			if last == '0' {
				flip = '1'
			}
			lines[i] = line[:len(line)-1] + string(flip)
		}
	}

	parsed, err := Unmarshal([]byte(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.False(t, parsed.Verify(pp.G, pp.H, pp.N))
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	proof := syntheticProof()
	body := string(proof.Marshal())

	cases := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"truncated", body[:len(body)/2]},
		{"bad hex", strings.Replace(body, "A: 0x0a", "A: 0xzz", 1)},
		{"wrong key order", strings.Replace(body, "A: 0x0a\nS: 0x0b", "S: 0x0b\nA: 0x0a", 1)},
		{"trailing garbage", body + "junk: 0x01\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.body))
			assert.True(t, errors.Is(err, util.ErrSerialization), "got %v", err)
		})
	}
}
