package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/luksgrin/pedersen-go/numeral"
)

// parseArg turns a command line argument into a host value. Arguments are
// numeric strings unless --raw is set, in which case they are hex encoded
// byte buffers.
func parseArg(cmd *cobra.Command, arg string) (numeral.Value, error) {
	if !getFlag(cmd, "raw") {
		log.Debugf("argument %q read as numeral", arg)
		return numeral.Text(arg), nil
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
	b, err := hex.DecodeString(digits)
	if err != nil {
		return numeral.Value{}, fmt.Errorf("%w: %v", numeral.ErrMalformedNumeral, err)
	}

	log.Debugf("argument %q read as %d raw bytes", arg, len(b))
	return numeral.Bytes(b), nil
}

func parseArgs(cmd *cobra.Command, args []string) ([]numeral.Value, error) {
	values := make([]numeral.Value, len(args))
	for i, arg := range args {
		v, err := parseArg(cmd, arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// write prints v as JSON when --json is set and text otherwise.
func write(cmd *cobra.Command, text string, v any) error {
	out := cmd.OutOrStdout()
	if !getFlag(cmd, "json") {
		_, err := fmt.Fprintln(out, text)
		return err
	}

	var (
		b   []byte
		err error
	)
	if isTerminal(out) {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(b))
	return err
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
