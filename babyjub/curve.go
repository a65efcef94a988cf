// Package babyjub adapts the iden3 BabyJubjub implementation to types.Curve.
package babyjub

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	babyjubjub "github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/ff"
	"golang.org/x/crypto/sha3"

	"github.com/luksgrin/pedersen-go/field"
	"github.com/luksgrin/pedersen-go/types"
)

type Curve = types.Curve
type Affine = types.Affine
type Projective = types.Projective

const compressedPointSize = 32

// altBaseDomain seeds the derivation of the second generator.
const altBaseDomain = "pedersen-go/babyjub/alt-base-point"

var _ Curve = &CurveImpl{}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "babyjubjub"
}

// BasePoint returns B8, the generator of the prime order subgroup.
func (c *CurveImpl) BasePoint() Affine {
	return fromPoint(babyjubjub.B8)
}

// AltBasePoint returns a subgroup generator whose discrete log with respect
// to BasePoint is unknown.
func (c *CurveImpl) AltBasePoint() Affine {
	return fromPoint(altBasePoint())
}

// Order returns the order of the prime order subgroup.
func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(babyjubjub.SubOrder)
}

func (c *CurveImpl) CompressedPointSize() int {
	return compressedPointSize
}

func (c *CurveImpl) Add(a, b Affine) Affine {
	sum := babyjubjub.NewPoint().Projective().Add(toPoint(a).Projective(), toPoint(b).Projective())
	return fromPoint(sum.Affine())
}

// ScalarMul computes n*p. Curve membership of p is not checked.
func (c *CurveImpl) ScalarMul(p Affine, n *big.Int) (Affine, error) {
	if n.Sign() < 0 {
		return Affine{}, fmt.Errorf("%w: %s", types.ErrNegativeScalar, n)
	}

	return fromPoint(babyjubjub.NewPoint().Mul(n, toPoint(p))), nil
}

func (c *CurveImpl) Equal(a, b Affine) bool {
	pa, pb := toPoint(a), toPoint(b)
	return pa.X.Cmp(pb.X) == 0 && pa.Y.Cmp(pb.Y) == 0
}

// Compress encodes p as little-endian y with the sign of x in the top bit.
func (c *CurveImpl) Compress(p Affine) []byte {
	b := toPoint(p).Compress()
	return b[:]
}

func (c *CurveImpl) Decompress(b []byte) (Affine, error) {
	if len(b) != compressedPointSize {
		return Affine{}, fmt.Errorf("%w: expected %d bytes, got %d", types.ErrInvalidEncoding, compressedPointSize, len(b))
	}

	var buf [compressedPointSize]byte
	copy(buf[:], b)

	p, err := babyjubjub.NewPoint().Decompress(buf)
	if err != nil {
		return Affine{}, fmt.Errorf("%w: %v", types.ErrInvalidEncoding, err)
	}

	return fromPoint(p), nil
}

func (c *CurveImpl) ToProjective(p Affine) Projective {
	pp := toPoint(p).Projective()
	return Projective{
		X: fromElement(pp.X),
		Y: fromElement(pp.Y),
		Z: fromElement(pp.Z),
	}
}

// ToAffine normalises p to z = 1. A zero z maps to (0, 0).
func (c *CurveImpl) ToAffine(p Projective) Affine {
	pp := &babyjubjub.PointProjective{
		X: toElement(p.X),
		Y: toElement(p.Y),
		Z: toElement(p.Z),
	}
	return fromPoint(pp.Affine())
}

func (c *CurveImpl) InCurve(p Affine) bool {
	return toPoint(p).InCurve()
}

func (c *CurveImpl) InSubGroup(p Affine) bool {
	return toPoint(p).InSubGroup()
}

func toPoint(a Affine) *babyjubjub.Point {
	return &babyjubjub.Point{
		X: a.X.BigInt(),
		Y: a.Y.BigInt(),
	}
}

func fromPoint(p *babyjubjub.Point) Affine {
	return Affine{
		X: field.Reduce(p.X),
		Y: field.Reduce(p.Y),
	}
}

func toElement(e field.Element) *ff.Element {
	return ff.NewElement().SetBigInt(e.BigInt())
}

// fromElement reads a library field element through its decimal form.
func fromElement(e *ff.Element) field.Element {
	n, ok := new(big.Int).SetString(e.String(), 10)
	if !ok {
		panic(fmt.Sprintf("invalid field element %q", e.String()))
	}

	return field.Reduce(n)
}

// altBasePoint hashes altBaseDomain with a counter until the digest decodes
// to a curve point, then clears the cofactor.
var altBasePoint = sync.OnceValue(func() *babyjubjub.Point {
	eight := big.NewInt(8)

	for ctr := uint32(0); ctr < 1<<16; ctr++ {
		var suffix [4]byte
		binary.BigEndian.PutUint32(suffix[:], ctr)
		h := sha3.Sum256(append([]byte(altBaseDomain), suffix[:]...))

		// keep the sign bit, bound y below 2^253
		h[31] &= 0x9f

		p, err := babyjubjub.NewPoint().Decompress(h)
		if err != nil {
			continue
		}

		p = babyjubjub.NewPoint().Mul(eight, p)
		if p.X.Sign() == 0 {
			continue
		}

		return p
	}

	panic("failed to derive alternate base point")
})
