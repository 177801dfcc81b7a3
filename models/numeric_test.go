package models

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNumeral(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"123"`, "123", true},
		{`123`, "123", true},
		{`1.50`, "1.50", true},
		{`1e21`, "1e21", true},
		{`" 42 "`, "42", true},
		{`""`, "", false},
		{`null`, "", false},
		{`true`, "", false},
		{`{"a":1}`, "", false},
		{`[1]`, "", false},
	}
	for _, tc := range cases {
		got, err := DecodeNumeral([]byte(tc.in))
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestU128StringAndNumberAgree(t *testing.T) {
	var fromString, fromNumber U128
	require.NoError(t, json.Unmarshal([]byte(`"1000000000000000000"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`1000000000000000000`), &fromNumber))
	assert.Equal(t, 0, fromString.Cmp(fromNumber))
	assert.Equal(t, "1000000000000000000", fromNumber.String())
}

func TestU128Bounds(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	v, err := ParseU128(max.String())
	require.NoError(t, err)
	assert.Equal(t, max.String(), v.String())

	_, err = ParseU128(new(big.Int).Add(max, big.NewInt(1)).String())
	assert.ErrorContains(t, err, "overflows 128 bits")

	_, err = ParseU128("-1")
	assert.ErrorContains(t, err, "negative")

	_, err = ParseU128("1.5")
	assert.ErrorContains(t, err, "not a whole number")

	_, err = ParseU128("1e200")
	assert.ErrorContains(t, err, "overflows")

	_, err = ParseU128("12abc")
	assert.Error(t, err)
}

func TestU128AlternateForms(t *testing.T) {
	assert.Equal(t, "1000000000000000000000", MustU128("1e21").String())
	assert.Equal(t, "5", MustU128("5.0").String())
	assert.Equal(t, "255", MustU128("0xff").String())
}

func TestU128ZeroValue(t *testing.T) {
	var u U128
	assert.True(t, u.IsZero())
	assert.Equal(t, "0", u.String())
	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"0"`, string(out))
}

func TestU128Decimal(t *testing.T) {
	u := MustU128("1500000000000000000")
	assert.Equal(t, "1.5", u.Decimal(18).String())

	n, ok := NewU128(7).Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), n)
}

func TestF64(t *testing.T) {
	var f F64
	require.NoError(t, json.Unmarshal([]byte(`"99.5"`), &f))
	assert.Equal(t, 99.5, f.Float64())
	require.NoError(t, json.Unmarshal([]byte(`100`), &f))
	assert.Equal(t, F64(100), f)

	_, err := ParseF64("1e400")
	assert.ErrorContains(t, err, "out of float64 range")
	_, err = ParseF64("NaN")
	assert.ErrorContains(t, err, "non finite")
	_, err = ParseF64("Inf")
	assert.Error(t, err)
	_, err = ParseF64("abc")
	assert.Error(t, err)

	assert.Error(t, json.Unmarshal([]byte(`null`), &f))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &f))
}
