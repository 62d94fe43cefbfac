// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/stern"
	"github.com/katalvlaran/ratree/tree"
)

const (
	levelsNumerators   = "num"
	levelsDenominators = "den"
)

// levelSet is the output of levels: fraction levels for sb/cw, integer
// levels for num/den. Exactly one of the two is set.
type levelSet struct {
	Tree      string                `json:"tree" yaml:"tree"`
	Fractions [][]rational.Fraction `json:"fractions,omitempty" yaml:"fractions,omitempty"`
	Integers  [][]int64             `json:"integers,omitempty" yaml:"integers,omitempty"`
}

// newLevelsCmd builds levels: the first m levels of a tree.
func (a *app) newLevelsCmd() *cobra.Command {
	levelsCmd := &cobra.Command{
		Use:   "levels <m>",
		Short: "Print levels 0..m-1 of a tree, one level per line",
		Long: `Print levels 0..m-1 of a tree, one level per line.

--tree selects the Stern-Brocot tree (sb), the Calkin-Wilf tree (cw), or the
numerator (num) or denominator (den) halves of the Stern-Brocot tree built
by repeated mediant insertion.`,
		Args:    cobra.ExactArgs(1),
		Example: "ratree levels 4 --tree cw",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseInt("m", args[0])
			if err != nil {
				return err
			}
			which := strings.ToLower(a.v.GetString("levels.tree"))

			res := levelSet{Tree: which}
			switch which {
			case levelsNumerators, levelsDenominators:
				build := stern.Numerators
				if which == levelsDenominators {
					build = stern.Denominators
				}
				if res.Integers, _, err = build(m); err != nil {
					return err
				}
			default:
				k, err := tree.ParseKind(which)
				if err != nil {
					return err
				}
				if res.Fractions, err = k.Levels(m); err != nil {
					return err
				}
				res.Tree = k.String()
			}

			return a.render(cmd, res, func(w io.Writer) error {
				for _, level := range res.Fractions {
					if _, err := fmt.Fprintln(w, joinFractions(level)); err != nil {
						return err
					}
				}
				for _, level := range res.Integers {
					if _, err := fmt.Fprintln(w, strings.Trim(fmt.Sprint(level), "[]")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	levelsCmd.Flags().String("tree", "sb", "tree to print: sb, cw, num or den")
	mustBind(a.v, "levels.tree", levelsCmd, "tree")

	return levelsCmd
}

// newDiatomicCmd builds diatomic: the first n terms of Stern's sequence.
func (a *app) newDiatomicCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diatomic <n>",
		Short:   "Print the first n terms s(0), ..., s(n-1) of Stern's diatomic sequence",
		Args:    cobra.ExactArgs(1),
		Example: "ratree diatomic 16",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			seq, err := stern.Diatomic(n)
			if err != nil {
				return err
			}

			return a.render(cmd, seq, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Trim(fmt.Sprint(seq), "[]"))
				return err
			})
		},
	}
}
