package util

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "0x00", EncodeHex(new(big.Int)))
	assert.Equal(t, "0x0f", EncodeHex(big.NewInt(15)))
	assert.Equal(t, "0xff", EncodeHex(big.NewInt(255)))
	assert.Equal(t, "0x0100", EncodeHex(big.NewInt(256)))
	assert.Equal(t, "0xdeadbeef", EncodeHex(big.NewInt(0xdeadbeef)))
}

func TestDecodeHex(t *testing.T) {
	for _, s := range []string{"0x", "0x00"} {
		x, err := DecodeHex(s)
		require.NoError(t, err)
		assert.Equal(t, 0, x.Sign())
	}

	x, err := DecodeHex("0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, 0, x.Cmp(big.NewInt(0xdeadbeef)))
}

func TestDecodeHexRejects(t *testing.T) {
	for _, s := range []string{"", "ff", "0xzz", "0x-ff", "x00"} {
		_, err := DecodeHex(s)
		assert.True(t, errors.Is(err, ErrSerialization), "input %q", s)
	}
}

func TestHexRoundTrip(t *testing.T) {
	values := []*big.Int{
		new(big.Int),
		big.NewInt(1),
		big.NewInt(0x1234),
		new(big.Int).Lsh(big.NewInt(1), 255),
	}
	for _, v := range values {
		got, err := DecodeHex(EncodeHex(v))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(got))
	}
}
