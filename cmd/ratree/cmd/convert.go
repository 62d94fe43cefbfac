// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/tree"
)

type conversion struct {
	Tree     string            `json:"tree" yaml:"tree"`
	Path     lrpath.Path       `json:"path" yaml:"path"`
	Length   int               `json:"length" yaml:"length"`
	Fraction rational.Fraction `json:"fraction" yaml:"fraction"`
}

// newFractionCmd builds sb-frac / cw-frac: path → fraction.
func (a *app) newFractionCmd(k tree.Kind) *cobra.Command {
	return &cobra.Command{
		Use:     k.String() + "-frac <path>",
		Short:   fmt.Sprintf("Print the fraction at a path of the %s tree", treeName(k)),
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("ratree %s-frac LRLL", k),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lrpath.Parse(args[0])
			if err != nil {
				return err
			}
			f, err := k.Fraction(p)
			if err != nil {
				return err
			}

			res := conversion{Tree: k.String(), Path: p, Length: p.Len(), Fraction: f}
			return a.render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, f)
				return err
			})
		},
	}
}

type pathOpts struct {
	maxLength int
	search    bool
}

// newPathCmd builds sb-path / cw-path: fraction → path.
func (a *app) newPathCmd(k tree.Kind) *cobra.Command {
	var opts pathOpts

	pathCmd := &cobra.Command{
		Use:   k.String() + "-path <fraction>",
		Short: fmt.Sprintf("Print the path of a fraction in the %s tree", treeName(k)),
		Args:  cobra.ExactArgs(1),
		Example: fmt.Sprintf(`ratree %[1]s-path 3/8
ratree %[1]s-path 0.375 --search --debug`, k),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := rational.Text(args[0])
			f, err := rational.Normalize(in)
			if err != nil {
				return err
			}
			p, err := a.walk(k, f, opts)
			if err != nil {
				return err
			}

			res := conversion{Tree: k.String(), Path: p, Length: p.Len(), Fraction: f}
			return a.render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, showPath(p))
				return err
			})
		},
	}
	pathCmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "fail instead of producing a path longer than this (0: unbounded)")
	pathCmd.Flags().BoolVar(&opts.search, "search", false, "descend from the root by mediant search instead of climbing by subtraction")

	return pathCmd
}

// walk runs the configured fraction → path walk, tracing each step at debug
// level.
func (a *app) walk(k tree.Kind, f rational.Fraction, opts pathOpts) (lrpath.Path, error) {
	var walkOpts []tree.Option
	if opts.maxLength > 0 {
		walkOpts = append(walkOpts, tree.WithMaxLength(opts.maxLength))
	}
	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		walkOpts = append(walkOpts, tree.WithOnStep(func(s tree.Step) {
			a.log.WithFields(logrus.Fields{"node": s.Node.String(), "move": s.Move.String()}).Debug("step")
		}))
	}

	if !opts.search {
		return k.Path(f, walkOpts...)
	}
	p, err := tree.SternBrocotPathBySearch(f, walkOpts...)
	if err != nil {
		return lrpath.Root, err
	}
	if k == tree.KindCalkinWilf {
		p = p.Reverse()
	}

	return p, nil
}

func treeName(k tree.Kind) string {
	if k == tree.KindCalkinWilf {
		return "Calkin-Wilf"
	}

	return "Stern-Brocot"
}
