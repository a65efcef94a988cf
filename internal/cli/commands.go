package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pedersen "github.com/luksgrin/pedersen-go"
	"github.com/luksgrin/pedersen-go/numeral"
)

func newPointCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "point x y",
		Short: "Construct a point and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pointFromArgs(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			return write(cmd, p.String(), p)
		},
	}
}

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul x y n",
		Short: "Multiply a point by a nonnegative scalar",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pointFromArgs(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			n, err := parseArg(cmd, args[2])
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := p.MultiplyScalar(n)
			if err != nil {
				return err
			}
			log.Debugf("scalar multiplication took %s", time.Since(start))

			return write(cmd, res.String(), res)
		},
	}
}

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress x y",
		Short: "Print the compressed encoding of a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pointFromArgs(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			return write(cmd, p.CompressHex(), p.CompressHex())
		},
	}
}

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress hex",
		Short: "Decode a compressed point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := strings.TrimPrefix(strings.TrimPrefix(args[0], "0x"), "0X")
			b, err := hex.DecodeString(digits)
			if err != nil {
				return fmt.Errorf("%w: %v", numeral.ErrMalformedNumeral, err)
			}

			p, err := pedersen.DecompressPoint(b)
			if err != nil {
				return err
			}

			return write(cmd, p.String(), p)
		},
	}
}

type commitOutput struct {
	Commitment string   `json:"commitment"`
	Value      *big.Int `json:"value"`
	Blinder    *big.Int `json:"blinder"`
}

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit value [blinder]",
		Short: "Build a Pedersen commitment, with a random blinder unless one is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(cmd, args)
			if err != nil {
				return err
			}

			value, err := pedersen.ScalarFromValue(values[0])
			if err != nil {
				return err
			}

			var blinder *big.Int
			if len(values) == 2 {
				blinder, err = pedersen.ScalarFromValue(values[1])
			} else {
				log.Debug("no blinder given, sampling one")
				blinder, err = pedersen.RandomScalar()
			}
			if err != nil {
				return err
			}

			c, err := pedersen.Commit(value, blinder)
			if err != nil {
				return err
			}

			out := commitOutput{
				Commitment: c.Point().CompressHex(),
				Value:      value,
				Blinder:    blinder,
			}
			text := fmt.Sprintf("%s\nblinder: %s", c, blinder)
			return write(cmd, text, out)
		},
	}
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch x y n...",
		Short: "Multiply a point by several scalars concurrently",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pointFromArgs(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			scalars, err := parseArgs(cmd, args[2:])
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := pedersen.MultiplyScalars(cmd.Context(), p, scalars)
			if err != nil {
				return err
			}
			log.Debugf("%d scalar multiplications took %s", len(res), time.Since(start))

			lines := make([]string, len(res))
			for i, r := range res {
				lines[i] = r.String()
			}

			return write(cmd, strings.Join(lines, "\n"), res)
		},
	}
}

func pointFromArgs(cmd *cobra.Command, x, y string) (pedersen.Point, error) {
	vx, err := parseArg(cmd, x)
	if err != nil {
		return pedersen.Point{}, err
	}

	vy, err := parseArg(cmd, y)
	if err != nil {
		return pedersen.Point{}, err
	}

	return pedersen.NewPoint(vx, vy)
}
