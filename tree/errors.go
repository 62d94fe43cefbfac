// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

var (
	// ErrNoFather is returned by Father for the root 1/1.
	ErrNoFather = fmt.Errorf("tree: %w", ratree.ErrNoFather)

	// ErrUnknownKind indicates a tree name other than the supported ones.
	ErrUnknownKind = fmt.Errorf("tree: unknown tree kind: %w", ratree.ErrInvalidArgument)

	// ErrPathTooLong indicates a walk that exceeded the WithMaxLength bound.
	ErrPathTooLong = fmt.Errorf("tree: path exceeds maximum length: %w", ratree.ErrInvalidArgument)
)
