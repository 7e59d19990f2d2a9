// Command cuproof is the shell boundary of the range-proof engine:
// it generates public parameters, produces proofs, and verifies them
// against the two canonical file formats.
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/CaoKiet251/Cuproof/commitment"
	"github.com/CaoKiet251/Cuproof/rangeproof"
	"github.com/CaoKiet251/Cuproof/rsagroup"
	"github.com/CaoKiet251/Cuproof/setup"
	"github.com/CaoKiet251/Cuproof/util"
)

const usage = `usage:
  cuproof setup <mode> <params-path>           mode: fast | trusted
  cuproof prove <params-path> <a-hex> <b-hex> <v-hex> <proof-path>
  cuproof verify <params-path> <proof-path>`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "setup":
		err = runSetup(os.Args[2:])
	case "prove":
		err = runProve(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:], os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q\n%s", os.Args[1], usage)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cuproof:", err)
		os.Exit(1)
	}
}

func runSetup(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("setup wants <mode> <params-path>")
	}
	pp, err := setup.TrustedSetup(setup.Mode(args[0]))
	if err != nil {
		return err
	}
	return pp.WriteFile(args[1])
}

func runProve(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("prove wants <params-path> <a-hex> <b-hex> <v-hex> <proof-path>")
	}
	pp, err := setup.ReadFile(args[0])
	if err != nil {
		return err
	}
	a, err := parseHexArg(args[1])
	if err != nil {
		return err
	}
	b, err := parseHexArg(args[2])
	if err != nil {
		return err
	}
	v, err := parseHexArg(args[3])
	if err != nil {
		return err
	}

	r := rsagroup.RandomBits(commitment.BlindingBits)
	proof, err := rangeproof.Prove(v, r, a, b, pp.G, pp.H, pp.N)
	if err != nil {
		return err
	}
	return proof.WriteFile(args[4])
}

func runVerify(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("verify wants <params-path> <proof-path>")
	}
	pp, err := setup.ReadFile(args[0])
	if err != nil {
		return err
	}
	proof, err := rangeproof.ReadFile(args[1])
	if err != nil {
		return err
	}
	if proof.Verify(pp.G, pp.H, pp.N) {
		fmt.Fprintln(out, "VALID")
	} else {
		fmt.Fprintln(out, "INVALID")
	}
	return nil
}

// parseHexArg reads a big-endian unsigned hex argument, with or without
// a 0x prefix.
func parseHexArg(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	x, err := util.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("bad hex argument %q", s)
	}
	return x, nil
}
