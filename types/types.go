package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/luksgrin/pedersen-go/field"
)

var (
	ErrCurveOperation  = errors.New("curve operation failed")
	ErrNegativeScalar  = fmt.Errorf("%w: negative scalar", ErrCurveOperation)
	ErrInvalidEncoding = fmt.Errorf("%w: invalid point encoding", ErrCurveOperation)
)

// Affine holds the coordinates of an affine curve point.
type Affine struct {
	X, Y field.Element
}

// Projective holds the coordinates of a projective curve point.
// (X, Y, Z) and (λX, λY, λZ) denote the same point.
type Projective struct {
	X, Y, Z field.Element
}

// Curve is the arithmetic the value types delegate to. Implementations
// never modify their arguments.
type Curve interface {
	Name() string
	BasePoint() Affine
	AltBasePoint() Affine
	Order() *big.Int
	CompressedPointSize() int
	Add(a, b Affine) Affine
	ScalarMul(p Affine, n *big.Int) (Affine, error)
	Equal(a, b Affine) bool
	Compress(p Affine) []byte
	Decompress(b []byte) (Affine, error)
	ToProjective(p Affine) Projective
	ToAffine(p Projective) Affine
	InCurve(p Affine) bool
	InSubGroup(p Affine) bool
}
