// SPDX-License-Identifier: MIT
// Package: ratree/tree
//
// options.go: functional options for the fraction → path walks.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Walks themselves never panic.
//   • Defaults: no step hook, no length bound.

package tree

import (
	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
)

// Step describes one move of a fraction → path walk.
//
// For the subtractive walks Node is the pair before the subtraction and
// Move the side it hangs on. For the root-down search Node is the mediant
// compared with the target and Move the direction taken.
type Step struct {
	Node rational.Fraction
	Move lrpath.Move
}

// Option customizes a walk.
type Option func(*walkConfig)

// walkConfig is the resolved option set of one call.
type walkConfig struct {
	onStep func(Step) // nil: no hook
	maxLen int        // 0: unbounded
}

// WithOnStep registers a hook called once per move, in walk order.
// Panics on nil.
func WithOnStep(fn func(Step)) Option {
	if fn == nil {
		panic("tree: WithOnStep(nil)")
	}
	return func(c *walkConfig) {
		c.onStep = fn
	}
}

// WithMaxLength bounds the path a walk may produce; a longer path fails with
// ErrPathTooLong instead of running for O(num+den) steps. Panics on n <= 0.
func WithMaxLength(n int) Option {
	if n <= 0 {
		panic("tree: WithMaxLength(n<=0)")
	}
	return func(c *walkConfig) {
		c.maxLen = n
	}
}

// newWalkConfig applies opts over the defaults.
func newWalkConfig(opts []Option) walkConfig {
	var c walkConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
