package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

// DecodeNumeral returns the numeral text held by a JSON value. A JSON string yields its
// content, a JSON number yields its literal text unchanged. Objects, arrays, booleans and
// null are rejected.
func DecodeNumeral(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch n := v.(type) {
	case json.Number:
		return n.String(), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return "", fmt.Errorf("empty string is not a number")
		}
		return s, nil
	case nil:
		return "", fmt.Errorf("null is not a number")
	case bool:
		return "", fmt.Errorf("boolean is not a number")
	case map[string]interface{}:
		return "", fmt.Errorf("object is not a number")
	case []interface{}:
		return "", fmt.Errorf("array is not a number")
	}
	return "", fmt.Errorf("unexpected JSON value %T", v)
}

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// U128 is an unsigned 128 bit quantity such as an on-chain token amount. It decodes from
// a JSON number or a numeral string and encodes as a decimal string. The zero value is 0.
type U128 struct {
	v *big.Int
}

func NewU128(n uint64) U128 {
	return U128{v: new(big.Int).SetUint64(n)}
}

// U128FromBig copies b, failing when it is negative or does not fit in 128 bits.
func U128FromBig(b *big.Int) (U128, error) {
	if b == nil {
		return U128{}, nil
	}
	if b.Sign() < 0 {
		return U128{}, fmt.Errorf("negative value %s is not allowed", b.String())
	}
	if b.Cmp(maxU128) > 0 {
		return U128{}, fmt.Errorf("value %s overflows 128 bits", b.String())
	}
	return U128{v: new(big.Int).Set(b)}, nil
}

// ParseU128 parses decimal or 0x prefixed hex text. Exponent and fraction notation is
// accepted only when the value is a whole number, e.g. "1e21" or "5.0".
func ParseU128(s string) (U128, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return U128{}, fmt.Errorf("empty numeral")
	}
	if strings.HasPrefix(text, "-") {
		return U128{}, fmt.Errorf("negative value %s is not allowed", text)
	}

	hex := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
	if !hex && strings.ContainsAny(text, ".eE") {
		v, err := parseWholeNumber(text)
		if err != nil {
			return U128{}, err
		}
		return U128FromBig(v)
	}

	v, ok := ethmath.ParseBig256(text)
	if !ok {
		return U128{}, fmt.Errorf("invalid numeral %q", text)
	}
	return U128FromBig(v)
}

func parseWholeNumber(text string) (*big.Int, error) {
	if strings.Contains(text, "/") {
		return nil, fmt.Errorf("invalid numeral %q", text)
	}
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		exp, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid numeral %q", text)
		}
		// 2^128 has 39 digits
		if exp > 80 {
			return nil, fmt.Errorf("value %s overflows 128 bits", text)
		}
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("invalid numeral %q", text)
	}
	if !r.IsInt() {
		return nil, fmt.Errorf("value %s is not a whole number", text)
	}
	return new(big.Int).Set(r.Num()), nil
}

// MustU128 is ParseU128 for constants; it panics on invalid input.
func MustU128(s string) U128 {
	v, err := ParseU128(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Big returns a copy of the value.
func (u U128) Big() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.v)
}

func (u U128) String() string {
	if u.v == nil {
		return "0"
	}
	return u.v.String()
}

func (u U128) IsZero() bool {
	return u.v == nil || u.v.Sign() == 0
}

func (u U128) Cmp(other U128) int {
	return u.Big().Cmp(other.Big())
}

// Uint64 returns the value and whether it fits in 64 bits.
func (u U128) Uint64() (uint64, bool) {
	b := u.Big()
	return b.Uint64(), b.IsUint64()
}

// Decimal shifts the raw amount by the token decimals: 1500000000000000000 with 18
// decimals is 1.5.
func (u U128) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(u.Big(), -decimals)
}

func (u U128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *U128) UnmarshalJSON(data []byte) error {
	text, err := DecodeNumeral(data)
	if err != nil {
		return err
	}
	v, err := ParseU128(text)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// F64 is a finite float that decodes from a JSON number or a numeral string.
type F64 float64

// ParseF64 rejects out of range values, NaN and infinities.
func ParseF64(s string) (F64, error) {
	text := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, fmt.Errorf("value %s is out of float64 range", text)
		}
		return 0, fmt.Errorf("invalid numeral %q", text)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non finite value %s is not allowed", text)
	}
	return F64(f), nil
}

func (f F64) Float64() float64 {
	return float64(f)
}

func (f F64) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(f))
}

func (f *F64) UnmarshalJSON(data []byte) error {
	text, err := DecodeNumeral(data)
	if err != nil {
		return err
	}
	v, err := ParseF64(text)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
