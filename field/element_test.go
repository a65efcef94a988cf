package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luksgrin/pedersen-go/numeral"
)

const modulusDecimal = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

func TestModulus(t *testing.T) {
	require.Equal(t, modulusDecimal, Modulus().String())

	// callers get a copy
	Modulus().SetInt64(1)
	require.Equal(t, modulusDecimal, Modulus().String())
}

func TestFromDecimal(t *testing.T) {
	e, err := FromDecimal("5")
	require.NoError(t, err)
	require.Equal(t, int64(5), e.BigInt().Int64())

	largest := new(big.Int).Sub(Modulus(), big.NewInt(1))
	e, err = FromDecimal(largest.String())
	require.NoError(t, err)
	require.Equal(t, largest.String(), e.BigInt().String())
}

func TestFromDecimal_Rejects(t *testing.T) {
	above := new(big.Int).Add(Modulus(), big.NewInt(1))
	for _, s := range []string{"", "abc", "0x5", "-1", modulusDecimal, above.String()} {
		_, err := FromDecimal(s)
		require.ErrorIs(t, err, ErrFieldConstruction, s)
	}
}

func TestFromValue_ShapeEquivalence(t *testing.T) {
	p, ok := new(big.Int).SetString("6360561867910373094066688120553762416144456282423235903351243436111059670888", 10)
	require.True(t, ok)

	values := []numeral.Value{
		numeral.Big(p),
		numeral.Text(p.Text(10)),
		numeral.Text("0x" + p.Text(16)),
		numeral.Text("0X" + p.Text(16)),
		numeral.Bytes(p.Bytes()),
	}

	for _, v := range values {
		e, err := FromValue(v)
		require.NoError(t, err, v.String())
		require.Equal(t, p.String(), e.BigInt().String(), v.String())
	}
}

func TestFromValue_PropagatesIngestErrors(t *testing.T) {
	_, err := FromValue(numeral.Text("0xZZ"))
	require.ErrorIs(t, err, numeral.ErrMalformedNumeral)
	require.NotErrorIs(t, err, ErrFieldConstruction)

	_, err = FromValue(numeral.Value{})
	require.ErrorIs(t, err, numeral.ErrTypeMismatch)

	_, err = FromValue(numeral.Int(-3))
	require.ErrorIs(t, err, ErrFieldConstruction)
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "255", "256", "18446744073709551616", "340282366920938463463374607431768211457"} {
		e, err := FromDecimal(s)
		require.NoError(t, err)
		require.Equal(t, s, e.String())
		require.Equal(t, s, e.BigInt().Text(10))
	}
}

func TestBytes_BigEndianLimbOrder(t *testing.T) {
	// 2^64 + 2 sits in the two lowest limbs
	e, err := FromDecimal("18446744073709551618")
	require.NoError(t, err)

	b := e.Bytes()
	expected := [Size]byte{}
	expected[23] = 1
	expected[31] = 2
	require.Equal(t, expected, b)
}

func TestHex(t *testing.T) {
	e, err := FromValue(numeral.Int(5))
	require.NoError(t, err)
	require.Equal(t, "0x5", e.Hex())
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000005", e.PaddedHex())

	require.Equal(t, "0x0", Zero().Hex())
	require.Equal(t, "0x1", One().Hex())
}

func TestReduce(t *testing.T) {
	e := Reduce(new(big.Int).Add(Modulus(), big.NewInt(3)))
	require.Equal(t, int64(3), e.BigInt().Int64())
	require.True(t, Reduce(Modulus()).IsZero())
	require.True(t, Reduce(big.NewInt(1)).Equal(One()))
}
