// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratree/approx"
	"github.com/katalvlaran/ratree/lrpath"
)

type approximation struct {
	X            float64              `json:"x" yaml:"x"`
	Path         lrpath.Path          `json:"path" yaml:"path"`
	Approximants []approx.Approximant `json:"approximants" yaml:"approximants"`
}

// newApproxCmd builds approx: the Stern-Brocot descent towards a real.
func (a *app) newApproxCmd() *cobra.Command {
	approxCmd := &cobra.Command{
		Use:   "approx <x> <n>",
		Short: "Approximate a positive real by the first n moves of its Stern-Brocot path",
		Long: `Approximate a positive real by the first n moves of its Stern-Brocot path.

x is a decimal number or one of e, pi, phi, sqrt2. Every approximant is the
node at a prefix of the path; --start and --step select which prefixes are
printed (lengths start, start+step, ... up to n).`,
		Args: cobra.ExactArgs(2),
		Example: `ratree approx e 20
ratree approx pi 400 --start 100 --step 100 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseReal(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt("n", args[1])
			if err != nil {
				return err
			}
			p, err := approx.Path(x, n)
			if err != nil {
				return err
			}
			r := approx.Range{Start: a.v.GetInt("approx.start"), Stop: n + 1, Step: a.v.GetInt("approx.step")}
			as, err := approx.Approximants(x, r)
			if err != nil {
				return err
			}

			res := approximation{X: x, Path: p, Approximants: as}
			return a.render(cmd, res, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "path %s\n", showPath(p)); err != nil {
					return err
				}
				for _, ap := range as {
					if _, err := fmt.Fprintf(w, "%4d %-24s %-22.17g %.3e\n", ap.Length, ap.Value, ap.Float, ap.Error); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	approxCmd.Flags().Int("start", 1, "shortest prefix length to print")
	approxCmd.Flags().Int("step", 1, "stride between printed prefix lengths")
	mustBind(a.v, "approx.start", approxCmd, "start")
	mustBind(a.v, "approx.step", approxCmd, "step")

	return approxCmd
}
