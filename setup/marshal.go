package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/CaoKiet251/Cuproof/util"
)

// Marshal renders the canonical parameter file: one 0x hex line each
// for g, h and n, with a trailing newline.
func (pp PublicParameters) Marshal() []byte {
	var sb strings.Builder
	sb.WriteString(util.EncodeHex(pp.G))
	sb.WriteByte('\n')
	sb.WriteString(util.EncodeHex(pp.H))
	sb.WriteByte('\n')
	sb.WriteString(util.EncodeHex(pp.N))
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// Unmarshal parses a parameter file body and validates the recovered
// parameters.
func Unmarshal(b []byte) (PublicParameters, error) {
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) != 3 {
		return PublicParameters{}, fmt.Errorf("%w: want 3 parameter lines, got %d",
			util.ErrSerialization, len(lines))
	}

	var pp PublicParameters
	var err error
	if pp.G, err = util.DecodeHex(lines[0]); err != nil {
		return PublicParameters{}, err
	}
	if pp.H, err = util.DecodeHex(lines[1]); err != nil {
		return PublicParameters{}, err
	}
	if pp.N, err = util.DecodeHex(lines[2]); err != nil {
		return PublicParameters{}, err
	}
	if err = pp.Validate(); err != nil {
		return PublicParameters{}, err
	}
	return pp, nil
}

// WriteFile persists the parameters at path.
func (pp PublicParameters) WriteFile(path string) error {
	return os.WriteFile(path, pp.Marshal(), 0o644)
}

// ReadFile loads and validates parameters from path.
func ReadFile(path string) (PublicParameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return PublicParameters{}, err
	}
	return Unmarshal(b)
}
