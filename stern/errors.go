package stern

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

var (
	// ErrNegativeDepth indicates a requested depth or term count < 0.
	ErrNegativeDepth = fmt.Errorf("stern: negative depth: %w", ratree.ErrInvalidArgument)

	// ErrDepthTooLarge indicates a depth above MaxDepth.
	ErrDepthTooLarge = fmt.Errorf("stern: depth exceeds MaxDepth: %w", ratree.ErrInvalidArgument)
)
