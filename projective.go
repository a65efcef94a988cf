package pedersen

import (
	"fmt"
	"math/big"

	"github.com/luksgrin/pedersen-go/field"
	"github.com/luksgrin/pedersen-go/types"
)

// ProjectivePoint is an immutable curve point in projective coordinates.
type ProjectivePoint struct {
	curve  Curve
	coords types.Projective
}

func NewProjectivePoint(x, y, z Value) (ProjectivePoint, error) {
	return NewProjectivePointOn(defaultCurve, x, y, z)
}

func NewProjectivePointOn(curve Curve, x, y, z Value) (ProjectivePoint, error) {
	fx, err := field.FromValue(x)
	if err != nil {
		return ProjectivePoint{}, fmt.Errorf("invalid x coordinate: %w", err)
	}

	fy, err := field.FromValue(y)
	if err != nil {
		return ProjectivePoint{}, fmt.Errorf("invalid y coordinate: %w", err)
	}

	fz, err := field.FromValue(z)
	if err != nil {
		return ProjectivePoint{}, fmt.Errorf("invalid z coordinate: %w", err)
	}

	return ProjectivePoint{
		curve:  curve,
		coords: types.Projective{X: fx, Y: fy, Z: fz},
	}, nil
}

func (p ProjectivePoint) Curve() Curve {
	if p.curve == nil {
		return defaultCurve
	}

	return p.curve
}

func (p ProjectivePoint) X() *big.Int {
	return p.coords.X.BigInt()
}

func (p ProjectivePoint) Y() *big.Int {
	return p.coords.Y.BigInt()
}

func (p ProjectivePoint) Z() *big.Int {
	return p.coords.Z.BigInt()
}

func (p ProjectivePoint) String() string {
	return fmt.Sprintf("ProjectivePoint(x=%s, y=%s, z=%s)",
		p.coords.X.Hex(), p.coords.Y.Hex(), p.coords.Z.Hex())
}

func (p ProjectivePoint) GoString() string {
	return p.String()
}

// Equal compares the affine forms, so scaled representatives are equal.
func (p ProjectivePoint) Equal(other ProjectivePoint) bool {
	return p.ToAffine().Equal(other.ToAffine())
}

// MultiplyScalar returns n*p, computed on the affine form.
func (p ProjectivePoint) MultiplyScalar(n Value) (ProjectivePoint, error) {
	res, err := p.ToAffine().MultiplyScalar(n)
	if err != nil {
		return ProjectivePoint{}, err
	}

	return res.ToProjective(), nil
}

func (p ProjectivePoint) ToAffine() Point {
	return Point{curve: p.Curve(), coords: p.Curve().ToAffine(p.coords)}
}
