package pedersen

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luksgrin/pedersen-go/numeral"
)

const (
	threeX = "3797457032829818846051130920114956979086572769243247264622180348175076696534"
	threeY = "2021268640777692167800740213637109364295083033904614886339895090764087138703"
)

func TestNewPoint_Shapes(t *testing.T) {
	expected := MustNewPoint(1, 2)

	for _, xy := range [][2]Value{
		{numeral.Text("1"), numeral.Text("2")},
		{numeral.Text("0x1"), numeral.Text("0x2")},
		{numeral.Int(1), numeral.Int(2)},
		{numeral.Bytes([]byte{1}), numeral.Bytes([]byte{2})},
		{numeral.Uint(1), numeral.Big(big.NewInt(2))},
	} {
		p, err := NewPoint(xy[0], xy[1])
		require.NoError(t, err)
		require.Equal(t, int64(1), p.X().Int64())
		require.Equal(t, int64(2), p.Y().Int64())
		require.True(t, expected.Equal(p))
	}
}

func TestNewPoint_ConcreteScenario(t *testing.T) {
	a, err := NewPoint(numeral.Text("5"), numeral.Text("0x7"))
	require.NoError(t, err)
	b, err := NewPoint(numeral.Int(5), numeral.Int(7))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, "5", b.X().String())
	require.Equal(t, "Point(x=0x5, y=0x7)", b.String())
	require.Equal(t, b.String(), b.GoString())
}

func TestNewPoint_Errors(t *testing.T) {
	_, err := NewPoint(numeral.Text("0xZZ"), numeral.Int(1))
	require.ErrorIs(t, err, ErrMalformedNumeral)
	require.NotErrorIs(t, err, ErrTypeMismatch)

	_, err = NewPoint(numeral.Int(1), Value{})
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = NewPoint(numeral.Int(-1), numeral.Int(1))
	require.ErrorIs(t, err, ErrFieldConstruction)

	_, err = NewPoint(numeral.Big(FieldModulus()), numeral.Int(1))
	require.ErrorIs(t, err, ErrFieldConstruction)
}

func TestPoint_RoundTrip(t *testing.T) {
	v, ok := new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495616", 10)
	require.True(t, ok)

	for _, in := range []Value{
		numeral.Text(v.Text(10)),
		numeral.Text("0x" + v.Text(16)),
		numeral.Bytes(v.Bytes()),
	} {
		p, err := NewPoint(in, numeral.Int(0))
		require.NoError(t, err)
		require.Equal(t, v.String(), p.X().String())
	}
}

func TestPoint_Coordinates(t *testing.T) {
	c := MustNewPoint(1, 2).Coordinates()
	require.Len(t, c, 2)
	require.Equal(t, int64(1), c["x"].Int64())
	require.Equal(t, int64(2), c["y"].Int64())
}

func TestPoint_Equal(t *testing.T) {
	a := MustNewPoint(1, 2)
	b := MustNewPoint(2, 3)

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.Equal(t, a.Equal(b), b.Equal(a))
}

func TestPoint_MultiplyScalar(t *testing.T) {
	p := MustNewPoint(1, 2)

	for _, n := range []Value{numeral.Int(3), numeral.Text("3"), numeral.Text("0x3"), numeral.Bytes([]byte{3})} {
		res, err := p.MultiplyScalar(n)
		require.NoError(t, err)
		require.Equal(t, threeX, res.X().String())
		require.Equal(t, threeY, res.Y().String())
	}

	// receiver is untouched
	require.Equal(t, int64(1), p.X().Int64())
}

func TestPoint_MultiplyScalar_MatchesHex(t *testing.T) {
	res, err := MustNewPoint(1, 2).MultiplyScalar(numeral.Int(3))
	require.NoError(t, err)

	expected := MustNewPoint(
		"0x086548d5d4d8f82f6a6baf21894b5e46607423daf13e18c2d2634b3cc84e21d6",
		"0x0477ff5cbee2683992acc7fb0a4806293e9c9d65eedd650315e360e98851998f",
	)
	require.True(t, expected.Equal(res))
	require.Equal(t, "Point(x=0x86548d5d4d8f82f6a6baf21894b5e46607423daf13e18c2d2634b3cc84e21d6, y=0x477ff5cbee2683992acc7fb0a4806293e9c9d65eedd650315e360e98851998f)", res.String())
}

func TestPoint_MultiplyScalar_Errors(t *testing.T) {
	p := MustNewPoint(1, 2)

	_, err := p.MultiplyScalar(numeral.Int(-3))
	require.ErrorIs(t, err, ErrNegativeScalar)

	_, err = p.MultiplyScalar(numeral.Text("three"))
	require.ErrorIs(t, err, ErrMalformedNumeral)

	_, err = p.MultiplyScalar(Value{})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestPoint_Compress(t *testing.T) {
	p := MustNewPoint(1, 2)
	expected := make([]byte, 32)
	expected[0] = 2

	require.Equal(t, expected, p.Compress())
	require.Equal(t, "0x0200000000000000000000000000000000000000000000000000000000000000", p.CompressHex())
}

func TestPoint_CompressHexCanonical(t *testing.T) {
	for _, p := range []Point{MustNewPoint(1, 2), BasePoint(), Identity(), MustNewPoint(threeX, threeY)} {
		require.Equal(t, "0x"+hex.EncodeToString(p.Compress()), p.CompressHex())
	}
}

func TestPoint_Add(t *testing.T) {
	b := BasePoint()
	two, err := b.MultiplyScalar(numeral.Int(2))
	require.NoError(t, err)

	require.True(t, two.Equal(b.Add(b)))
	require.True(t, b.Equal(b.Add(Identity())))
}

func TestPoint_Membership(t *testing.T) {
	require.True(t, BasePoint().InCurve())
	require.True(t, BasePoint().InSubGroup())
	require.True(t, Identity().InCurve())
	require.False(t, MustNewPoint(1, 2).InCurve())
}

func TestPoint_ZeroValue(t *testing.T) {
	var p Point
	require.Equal(t, "Point(x=0x0, y=0x0)", p.String())
	require.True(t, p.Equal(MustNewPoint(0, 0)))
}

func TestMustNewPoint_Panics(t *testing.T) {
	require.Panics(t, func() { MustNewPoint(1.5, 2) })
	require.Panics(t, func() { MustNewPoint("0xZZ", 2) })
}

type namedCurve struct {
	Curve
	name string
}

func (c namedCurve) Name() string {
	return c.name
}

func TestPoint_DifferentCurves(t *testing.T) {
	other := namedCurve{Curve: DefaultCurve(), name: "other"}
	a, err := NewPointOn(other, numeral.Int(1), numeral.Int(2))
	require.NoError(t, err)
	b := MustNewPoint(1, 2)

	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))
	require.True(t, a.Equal(a))
	require.Panics(t, func() { a.Add(b) })
	require.Equal(t, "other", a.ToProjective().Curve().Name())
}
