// Package pedersen exposes BabyJubjub points as immutable values that can be
// built from integers, numeric strings or big-endian byte buffers and
// rendered back as integers, hex strings or compressed bytes.
//
// Arithmetic is delegated to a types.Curve, by default the babyjub package.
package pedersen

import (
	"math/big"

	"github.com/luksgrin/pedersen-go/babyjub"
	"github.com/luksgrin/pedersen-go/field"
	"github.com/luksgrin/pedersen-go/numeral"
	"github.com/luksgrin/pedersen-go/types"
)

type Curve = types.Curve
type Value = numeral.Value

// Errors returned by this package and the packages it delegates to.
var (
	ErrTypeMismatch      = numeral.ErrTypeMismatch
	ErrMalformedNumeral  = numeral.ErrMalformedNumeral
	ErrFieldConstruction = field.ErrFieldConstruction
	ErrCurveOperation    = types.ErrCurveOperation
	ErrNegativeScalar    = types.ErrNegativeScalar
	ErrInvalidEncoding   = types.ErrInvalidEncoding
)

var defaultCurve = babyjub.NewCurve()

// DefaultCurve returns the BabyJubjub curve used by NewPoint.
func DefaultCurve() Curve {
	return defaultCurve
}

// FieldModulus returns the prime of the coordinate field.
func FieldModulus() *big.Int {
	return field.Modulus()
}
