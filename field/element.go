// Package field implements the BabyJubjub base field, which is the scalar
// field of BN254.
package field

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/luksgrin/pedersen-go/numeral"
)

// Size is the byte width of an encoded element.
const Size = fr.Bytes

// ErrFieldConstruction is returned when a numeral cannot become a field element.
var ErrFieldConstruction = errors.New("cannot construct field element")

// Element is an immutable field element.
type Element struct {
	inner fr.Element
}

// Modulus returns a copy of the field prime.
func Modulus() *big.Int {
	return fr.Modulus()
}

// FromDecimal constructs an element from a base-10 numeral. Values outside
// [0, p) are rejected rather than reduced.
func FromDecimal(s string) (Element, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q is not a decimal numeral", ErrFieldConstruction, s)
	}

	if n.Sign() < 0 {
		return Element{}, fmt.Errorf("%w: %s is negative", ErrFieldConstruction, s)
	}

	if n.Cmp(fr.Modulus()) >= 0 {
		return Element{}, fmt.Errorf("%w: %s exceeds the field modulus", ErrFieldConstruction, s)
	}

	var e Element
	e.inner.SetBigInt(n)
	return e, nil
}

// FromValue resolves v to a decimal numeral and constructs the element from it,
// so every input shape goes through the same constructor.
func FromValue(v numeral.Value) (Element, error) {
	d, err := v.Decimal()
	if err != nil {
		return Element{}, err
	}

	return FromDecimal(d)
}

// Reduce returns n mod p. It is meant for values computed by curve arithmetic;
// host input goes through FromValue.
func Reduce(n *big.Int) Element {
	var e Element
	e.inner.SetBigInt(n)
	return e
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// Bytes returns the big-endian encoding of e, always Size bytes long.
func (e Element) Bytes() [Size]byte {
	var b [Size]byte

	// Bits are little-endian limbs in regular (non-Montgomery) form.
	limbs := e.inner.Bits()
	for i := range limbs {
		binary.BigEndian.PutUint64(b[i*8:], limbs[len(limbs)-1-i])
	}

	return b
}

// BigInt returns the canonical unsigned value of e.
func (e Element) BigInt() *big.Int {
	b := e.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Hex returns the minimal 0x-prefixed lowercase hex form, e.g. "0x5".
func (e Element) Hex() string {
	return "0x" + e.BigInt().Text(16)
}

// PaddedHex returns the 0x-prefixed hex form of all Size bytes.
func (e Element) PaddedHex() string {
	b := e.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

func (e Element) Equal(o Element) bool {
	return e.inner.Equal(&o.inner)
}

func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// String returns the decimal form.
func (e Element) String() string {
	return e.BigInt().Text(10)
}
