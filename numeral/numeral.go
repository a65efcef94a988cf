// Package numeral parses host supplied numbers into arbitrary precision
// integers.
//
// A Value is a closed tagged union over the accepted input shapes: native
// integers, decimal or 0x-prefixed hex strings, and big-endian byte buffers.
package numeral

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrTypeMismatch is returned when a value matches none of the accepted shapes.
	ErrTypeMismatch = errors.New("value is not an integer, numeric string or byte buffer")
	// ErrMalformedNumeral is returned when a string contains digits invalid for its base.
	ErrMalformedNumeral = errors.New("malformed numeral")
)

// Kind identifies the shape held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindString
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Value is an immutable host value. The zero Value is invalid.
type Value struct {
	kind    Kind
	integer *big.Int
	text    string
	raw     []byte
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInteger, integer: big.NewInt(i)}
}

// Uint returns an integer Value.
func Uint(u uint64) Value {
	return Value{kind: KindInteger, integer: new(big.Int).SetUint64(u)}
}

// Big returns an integer Value holding a copy of b. A nil b gives the zero Value.
func Big(b *big.Int) Value {
	if b == nil {
		return Value{}
	}

	return Value{kind: KindInteger, integer: new(big.Int).Set(b)}
}

// Text returns a string Value, either decimal or prefixed with 0x/0X.
func Text(s string) Value {
	return Value{kind: KindString, text: s}
}

// Bytes returns a Value holding a copy of the big-endian magnitude b.
func Bytes(b []byte) Value {
	raw := make([]byte, len(b))
	copy(raw, b)
	return Value{kind: KindBytes, raw: raw}
}

// Of converts an arbitrary Go value into a Value. Integers are tried first,
// then strings, then byte slices.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case *big.Int:
		if x == nil {
			return Value{}, fmt.Errorf("%w: nil *big.Int", ErrTypeMismatch)
		}
		return Big(x), nil
	case big.Int:
		return Big(&x), nil
	}

	switch x := v.(type) {
	case string:
		return Text(x), nil
	case []byte:
		return Bytes(x), nil
	}

	return Value{}, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
}

// Kind returns the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// BigInt returns the integer v denotes.
func (v Value) BigInt() (*big.Int, error) {
	switch v.kind {
	case KindInteger:
		return new(big.Int).Set(v.integer), nil
	case KindString:
		return parseString(v.text)
	case KindBytes:
		return new(big.Int).SetBytes(v.raw), nil
	default:
		return nil, ErrTypeMismatch
	}
}

// Decimal returns the canonical base-10 numeral of v.
func (v Value) Decimal() (string, error) {
	n, err := v.BigInt()
	if err != nil {
		return "", err
	}

	return n.Text(10), nil
}

func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return v.integer.String()
	case KindString:
		return fmt.Sprintf("%q", v.text)
	case KindBytes:
		return fmt.Sprintf("bytes(%x)", v.raw)
	default:
		return "<invalid>"
	}
}

func parseString(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return parseHex(s[2:])
	}

	return parseDecimal(s)
}

func parseHex(digits string) (*big.Int, error) {
	if digits == "" {
		return nil, fmt.Errorf("%w: hex numeral has no digits", ErrMalformedNumeral)
	}

	// big.Int accepts a sign, which is not part of a hex literal.
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, fmt.Errorf("%w: invalid hex digit %q", ErrMalformedNumeral, digits[i])
		}
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNumeral, digits)
	}

	return n, nil
}

func parseDecimal(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if digits == "" || len(s)-len(digits) > 1 {
		return nil, fmt.Errorf("%w: %q is not a decimal numeral", ErrMalformedNumeral, s)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: invalid decimal digit %q", ErrMalformedNumeral, digits[i])
		}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNumeral, s)
	}

	return n, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
