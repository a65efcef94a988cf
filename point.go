package pedersen

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/luksgrin/pedersen-go/field"
	"github.com/luksgrin/pedersen-go/numeral"
	"github.com/luksgrin/pedersen-go/types"
)

// Point is an immutable affine curve point. Operations return new values.
// The zero Point is (0, 0) on the default curve.
type Point struct {
	curve  Curve
	coords types.Affine
}

// NewPoint builds a point on the default curve. Each coordinate must lie in
// [0, p); curve membership is not checked.
func NewPoint(x, y Value) (Point, error) {
	return NewPointOn(defaultCurve, x, y)
}

// NewPointOn builds a point on the given curve.
func NewPointOn(curve Curve, x, y Value) (Point, error) {
	fx, err := field.FromValue(x)
	if err != nil {
		return Point{}, fmt.Errorf("invalid x coordinate: %w", err)
	}

	fy, err := field.FromValue(y)
	if err != nil {
		return Point{}, fmt.Errorf("invalid y coordinate: %w", err)
	}

	return Point{
		curve:  curve,
		coords: types.Affine{X: fx, Y: fy},
	}, nil
}

// MustNewPoint is like NewPoint but accepts any value numeral.Of accepts and
// panics on error. It is intended for constants and tests.
func MustNewPoint(x, y any) Point {
	vx, err := numeral.Of(x)
	if err != nil {
		panic(err)
	}

	vy, err := numeral.Of(y)
	if err != nil {
		panic(err)
	}

	p, err := NewPoint(vx, vy)
	if err != nil {
		panic(err)
	}

	return p
}

// BasePoint returns the generator of the prime order subgroup.
func BasePoint() Point {
	return Point{curve: defaultCurve, coords: defaultCurve.BasePoint()}
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	return Point{
		curve:  defaultCurve,
		coords: types.Affine{X: field.Zero(), Y: field.One()},
	}
}

func (p Point) Curve() Curve {
	if p.curve == nil {
		return defaultCurve
	}

	return p.curve
}

func (p Point) X() *big.Int {
	return p.coords.X.BigInt()
}

func (p Point) Y() *big.Int {
	return p.coords.Y.BigInt()
}

// Coordinates returns {"x": X(), "y": Y()}.
func (p Point) Coordinates() map[string]*big.Int {
	return map[string]*big.Int{
		"x": p.X(),
		"y": p.Y(),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%s, y=%s)", p.coords.X.Hex(), p.coords.Y.Hex())
}

func (p Point) GoString() string {
	return p.String()
}

// Equal reports whether p and other are the same point on the same curve.
func (p Point) Equal(other Point) bool {
	if !sameCurve(p.Curve(), other.Curve()) {
		return false
	}

	return p.Curve().Equal(p.coords, other.coords)
}

// Compress returns the compressed encoding of p.
func (p Point) Compress() []byte {
	return p.Curve().Compress(p.coords)
}

// CompressHex returns "0x" followed by the hex of Compress().
func (p Point) CompressHex() string {
	return "0x" + hex.EncodeToString(p.Compress())
}

// MultiplyScalar returns n*p. n must be nonnegative.
func (p Point) MultiplyScalar(n Value) (Point, error) {
	s, err := ScalarFromValue(n)
	if err != nil {
		return Point{}, err
	}

	return p.mul(s)
}

func (p Point) mul(s *big.Int) (Point, error) {
	res, err := p.Curve().ScalarMul(p.coords, s)
	if err != nil {
		return Point{}, err
	}

	return Point{curve: p.Curve(), coords: res}, nil
}

// Add returns p + other. Both points must be on the same curve.
func (p Point) Add(other Point) Point {
	if !sameCurve(p.Curve(), other.Curve()) {
		panic(fmt.Sprintf("cannot add points on %s and %s", p.Curve().Name(), other.Curve().Name()))
	}

	return Point{curve: p.Curve(), coords: p.Curve().Add(p.coords, other.coords)}
}

func (p Point) ToProjective() ProjectivePoint {
	return ProjectivePoint{curve: p.Curve(), coords: p.Curve().ToProjective(p.coords)}
}

// InCurve reports whether p satisfies the curve equation.
func (p Point) InCurve() bool {
	return p.Curve().InCurve(p.coords)
}

// InSubGroup reports whether p is in the prime order subgroup.
func (p Point) InSubGroup() bool {
	return p.Curve().InSubGroup(p.coords)
}

func sameCurve(a, b Curve) bool {
	return a.Name() == b.Name()
}
