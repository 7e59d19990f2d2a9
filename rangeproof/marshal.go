package rangeproof

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/CaoKiet251/Cuproof/util"
)

// proof.txt is a line-oriented key-value format. Scalar entries appear
// in a fixed order, the inner product commitment lists follow as blocks
// of two-space indented lines, deepest recursion level first.

var scalarKeys = []string{
	"A", "S", "T1", "T2", "tau_x", "mu", "t_hat",
	"C", "C_v1", "C_v2", "t0", "t1", "t2", "tau1", "tau2",
}

func (proof *RangeProof) scalarFields() []**big.Int {
	return []**big.Int{
		&proof.A, &proof.S, &proof.T1, &proof.T2, &proof.Taux, &proof.Mu,
		&proof.Tprime, &proof.C, &proof.Cv1, &proof.Cv2, &proof.T0,
		&proof.T1c, &proof.T2c, &proof.Tau1, &proof.Tau2,
	}
}

// Marshal renders the canonical proof file body.
func (proof *RangeProof) Marshal() []byte {
	var sb strings.Builder
	fields := proof.scalarFields()
	for i, key := range scalarKeys {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(util.EncodeHex(*fields[i]))
		sb.WriteByte('\n')
	}
	sb.WriteString("IPP_L:\n")
	for _, l := range proof.InnerProductProof.Ls {
		sb.WriteString("  ")
		sb.WriteString(util.EncodeHex(l))
		sb.WriteByte('\n')
	}
	sb.WriteString("IPP_R:\n")
	for _, r := range proof.InnerProductProof.Rs {
		sb.WriteString("  ")
		sb.WriteString(util.EncodeHex(r))
		sb.WriteByte('\n')
	}
	sb.WriteString("IPP_a: ")
	sb.WriteString(util.EncodeHex(proof.InnerProductProof.A))
	sb.WriteByte('\n')
	sb.WriteString("IPP_b: ")
	sb.WriteString(util.EncodeHex(proof.InnerProductProof.B))
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// Unmarshal parses a proof file body. The parser accepts extra
// whitespace around entries; the emitted form is canonical.
func Unmarshal(b []byte) (RangeProof, error) {
	var proof RangeProof

	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	pos := 0
	next := func() (string, error) {
		if pos >= len(lines) {
			return "", fmt.Errorf("%w: truncated proof file", util.ErrSerialization)
		}
		line := lines[pos]
		pos++
		return line, nil
	}

	fields := proof.scalarFields()
	for i, key := range scalarKeys {
		line, err := next()
		if err != nil {
			return RangeProof{}, err
		}
		value, err := cutKey(line, key)
		if err != nil {
			return RangeProof{}, err
		}
		if *fields[i], err = util.DecodeHex(value); err != nil {
			return RangeProof{}, err
		}
	}

	// parseBlock reads through the keyed line terminating each block, so
	// rewind one line after it returns.
	var err error
	if proof.InnerProductProof.Ls, err = parseBlock(next, "IPP_L"); err != nil {
		return RangeProof{}, err
	}
	pos--
	if proof.InnerProductProof.Rs, err = parseBlock(next, "IPP_R"); err != nil {
		return RangeProof{}, err
	}
	pos--

	line, _ := next()
	value, err := cutKey(line, "IPP_a")
	if err != nil {
		return RangeProof{}, err
	}
	if proof.InnerProductProof.A, err = util.DecodeHex(value); err != nil {
		return RangeProof{}, err
	}

	line, err = next()
	if err != nil {
		return RangeProof{}, err
	}
	if value, err = cutKey(line, "IPP_b"); err != nil {
		return RangeProof{}, err
	}
	if proof.InnerProductProof.B, err = util.DecodeHex(value); err != nil {
		return RangeProof{}, err
	}

	if pos != len(lines) {
		return RangeProof{}, fmt.Errorf("%w: trailing content after proof", util.ErrSerialization)
	}
	return proof, nil
}

// cutKey strips "<key>:" from a line and returns the trimmed value.
func cutKey(line, key string) (string, error) {
	rest, ok := strings.CutPrefix(line, key+":")
	if !ok {
		return "", fmt.Errorf("%w: want %q entry, got %q", util.ErrSerialization, key, line)
	}
	return strings.TrimSpace(rest), nil
}

// parseBlock consumes a "<key>:" header and the element lines that
// follow it, up to (not including) the next keyed line. The caller
// rewinds one line to re-read the terminating key.
func parseBlock(next func() (string, error), key string) ([]*big.Int, error) {
	header, err := next()
	if err != nil {
		return nil, err
	}
	if rest, errKey := cutKey(header, key); errKey != nil || rest != "" {
		return nil, fmt.Errorf("%w: want %q block, got %q", util.ErrSerialization, key, header)
	}
	var elems []*big.Int
	for {
		line, err := next()
		if err != nil {
			return nil, err
		}
		if strings.Contains(line, ":") {
			return elems, nil
		}
		x, err := util.DecodeHex(line)
		if err != nil {
			return nil, err
		}
		elems = append(elems, x)
	}
}

// WriteFile persists the proof at path.
func (proof *RangeProof) WriteFile(path string) error {
	return os.WriteFile(path, proof.Marshal(), 0o644)
}

// ReadFile loads a proof from path.
func ReadFile(path string) (RangeProof, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RangeProof{}, err
	}
	return Unmarshal(b)
}
