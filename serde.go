package pedersen

import (
	"math/big"

	"github.com/segmentio/encoding/json"

	"github.com/luksgrin/pedersen-go/numeral"
)

// DecompressPoint decodes a compressed point on the default curve.
func DecompressPoint(b []byte) (Point, error) {
	return DecompressPointOn(defaultCurve, b)
}

func DecompressPointOn(curve Curve, b []byte) (Point, error) {
	coords, err := curve.Decompress(b)
	if err != nil {
		return Point{}, err
	}

	return Point{curve: curve, coords: coords}, nil
}

// MarshalBinary returns the compressed encoding.
func (p Point) MarshalBinary() ([]byte, error) {
	return p.Compress(), nil
}

// UnmarshalBinary replaces p with the decoded compressed point.
func (p *Point) UnmarshalBinary(b []byte) error {
	dec, err := DecompressPointOn(p.Curve(), b)
	if err != nil {
		return err
	}

	*p = dec
	return nil
}

// MarshalJSON encodes p as {"x": <number>, "y": <number>}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Coordinates())
}

// UnmarshalJSON replaces p with the point in {"x": <number>, "y": <number>}.
func (p *Point) UnmarshalJSON(b []byte) error {
	var raw struct {
		X *big.Int `json:"x"`
		Y *big.Int `json:"y"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	dec, err := NewPointOn(p.Curve(), numeral.Big(raw.X), numeral.Big(raw.Y))
	if err != nil {
		return err
	}

	*p = dec
	return nil
}
