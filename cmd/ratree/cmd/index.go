// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratree/lrpath"
)

type coordinates struct {
	Path  lrpath.Path `json:"path" yaml:"path"`
	Level int         `json:"level" yaml:"level"`
	Index int         `json:"index" yaml:"index"`
}

// newIndexCmd builds index: path → (level, index).
func (a *app) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "index <path>",
		Short:   "Print the level and index of the node a path names",
		Args:    cobra.ExactArgs(1),
		Example: "ratree index RRL",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lrpath.Parse(args[0])
			if err != nil {
				return err
			}
			level, index, err := p.Index()
			if err != nil {
				return err
			}

			res := coordinates{Path: p, Level: level, Index: index}
			return a.render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, level, index)
				return err
			})
		},
	}
}

// newPathAtCmd builds path: (level, index) → path.
func (a *app) newPathAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "path <level> <index>",
		Short:   "Print the path of the node at a level and index",
		Args:    cobra.ExactArgs(2),
		Example: "ratree path 3 6",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("level", args[0])
			if err != nil {
				return err
			}
			index, err := parseInt("index", args[1])
			if err != nil {
				return err
			}
			p, err := lrpath.FromIndex(level, index)
			if err != nil {
				return err
			}

			res := coordinates{Path: p, Level: level, Index: index}
			return a.render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, showPath(p))
				return err
			})
		},
	}
}
