// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ratree"
)

// namedReals are the constants approx accepts by name.
var namedReals = map[string]float64{
	"e":     math.E,
	"pi":    math.Pi,
	"phi":   math.Phi,
	"sqrt2": math.Sqrt2,
}

// parseInt reads a decimal integer argument.
func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, ratree.ErrInvalidArgument)
	}

	return n, nil
}

// parseReal reads a float argument or one of the named constants.
func parseReal(s string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if x, ok := namedReals[key]; ok {
		return x, nil
	}
	x, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid real number %q: %w", s, ratree.ErrInvalidArgument)
	}

	return x, nil
}
