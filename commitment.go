package pedersen

import (
	"fmt"
	"math/big"
)

// Commitment is a Pedersen commitment value*G + blinder*H, where G is the
// base point and H the curve's alternate base point.
type Commitment struct {
	point Point
}

// Commit commits to value on the default curve.
func Commit(value, blinder *big.Int) (Commitment, error) {
	return CommitOn(defaultCurve, value, blinder)
}

func CommitOn(curve Curve, value, blinder *big.Int) (Commitment, error) {
	if value.Sign() < 0 || blinder.Sign() < 0 {
		return Commitment{}, fmt.Errorf("%w: commitment inputs must be nonnegative", ErrNegativeScalar)
	}

	g := Point{curve: curve, coords: curve.BasePoint()}
	h := Point{curve: curve, coords: curve.AltBasePoint()}

	vG, err := g.mul(value)
	if err != nil {
		return Commitment{}, err
	}

	rH, err := h.mul(blinder)
	if err != nil {
		return Commitment{}, err
	}

	return Commitment{point: vG.Add(rH)}, nil
}

// CommitRandom commits to value with a fresh random blinder, which is returned
// for the later opening.
func CommitRandom(value *big.Int) (Commitment, *big.Int, error) {
	blinder, err := RandomScalar()
	if err != nil {
		return Commitment{}, nil, err
	}

	c, err := Commit(value, blinder)
	if err != nil {
		return Commitment{}, nil, err
	}

	return c, blinder, nil
}

func (c Commitment) Point() Point {
	return c.point
}

// Verify reports whether (value, blinder) opens c.
func (c Commitment) Verify(value, blinder *big.Int) bool {
	expected, err := CommitOn(c.point.Curve(), value, blinder)
	if err != nil {
		return false
	}

	return c.point.Equal(expected.point)
}

// Add returns the commitment to the sum of both values under the sum of
// both blinders.
func (c Commitment) Add(other Commitment) Commitment {
	return Commitment{point: c.point.Add(other.point)}
}

func (c Commitment) String() string {
	return fmt.Sprintf("Commitment(%s)", c.point.CompressHex())
}
