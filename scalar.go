package pedersen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// ScalarFromValue parses a scalar multiplier. Negative values are rejected.
func ScalarFromValue(n Value) (*big.Int, error) {
	s, err := n.BigInt()
	if err != nil {
		return nil, fmt.Errorf("invalid scalar: %w", err)
	}

	if s.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeScalar, s)
	}

	return s, nil
}

// HashToScalar maps arbitrary bytes to a scalar modulo the subgroup order.
func HashToScalar(in []byte) *big.Int {
	h := sha3.Sum512(in)
	s := new(big.Int).SetBytes(h[:])
	return s.Mod(s, defaultCurve.Order())
}

// RandomScalar returns a uniformly random nonzero scalar below the subgroup order.
func RandomScalar() (*big.Int, error) {
	bound := new(big.Int).Sub(defaultCurve.Order(), big.NewInt(1))
	s, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, err
	}

	return s.Add(s, big.NewInt(1)), nil
}
