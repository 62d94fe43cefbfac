package tree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
)

// Kind selects one of the two trees, for callers (such as a CLI) that pick
// the tree at run time.
type Kind int

const (
	// KindSternBrocot is the Stern-Brocot tree.
	KindSternBrocot Kind = iota

	// KindCalkinWilf is the Calkin-Wilf tree.
	KindCalkinWilf
)

// ParseKind accepts "sb"/"stern-brocot" and "cw"/"calkin-wilf",
// case-insensitively. Returns ErrUnknownKind otherwise.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sb", "stern-brocot", "sternbrocot":
		return KindSternBrocot, nil
	case "cw", "calkin-wilf", "calkinwilf":
		return KindCalkinWilf, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// String returns the short name "sb" or "cw".
func (k Kind) String() string {
	switch k {
	case KindSternBrocot:
		return "sb"
	case KindCalkinWilf:
		return "cw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fraction returns the node value at p in tree k.
func (k Kind) Fraction(p lrpath.Path) (rational.Fraction, error) {
	switch k {
	case KindSternBrocot:
		return SternBrocot(p)
	case KindCalkinWilf:
		return CalkinWilf(p)
	default:
		return rational.Fraction{}, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

// Path returns the path of in within tree k.
func (k Kind) Path(in rational.Input, opts ...Option) (lrpath.Path, error) {
	switch k {
	case KindSternBrocot:
		return SternBrocotPath(in, opts...)
	case KindCalkinWilf:
		return CalkinWilfPath(in, opts...)
	default:
		return lrpath.Root, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

// Levels returns levels 0..m−1 of tree k.
func (k Kind) Levels(m int) ([][]rational.Fraction, error) {
	switch k {
	case KindSternBrocot:
		return SternBrocotLevels(m)
	case KindCalkinWilf:
		return CalkinWilfLevels(m)
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}
