// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/tree"
)

type fatherOf struct {
	Fraction rational.Fraction `json:"fraction" yaml:"fraction"`
	Father   rational.Fraction `json:"father" yaml:"father"`
}

type sonsOf struct {
	Fraction rational.Fraction `json:"fraction" yaml:"fraction"`
	Left     rational.Fraction `json:"left" yaml:"left"`
	Right    rational.Fraction `json:"right" yaml:"right"`
}

// newFatherCmd builds father: the Stern-Brocot father of a fraction.
func (a *app) newFatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "father <fraction>",
		Short:   "Print the father of a Stern-Brocot node",
		Args:    cobra.ExactArgs(1),
		Example: "ratree father 3/8",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rational.Normalize(rational.Text(args[0]))
			if err != nil {
				return err
			}
			dad, err := tree.Father(f)
			if err != nil {
				return err
			}

			return a.render(cmd, fatherOf{Fraction: f, Father: dad}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, dad)
				return err
			})
		},
	}
}

// newSonsCmd builds sons: the two Stern-Brocot sons of a fraction.
func (a *app) newSonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sons <fraction>",
		Short:   "Print the left and right sons of a Stern-Brocot node",
		Args:    cobra.ExactArgs(1),
		Example: "ratree sons 2/5",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rational.Normalize(rational.Text(args[0]))
			if err != nil {
				return err
			}
			left, right, err := tree.Sons(f)
			if err != nil {
				return err
			}

			return a.render(cmd, sonsOf{Fraction: f, Left: left, Right: right}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, left, right)
				return err
			})
		},
	}
}
