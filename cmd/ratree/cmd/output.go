// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var supportedFormats = []string{formatText, formatJSON, formatYAML}

// checkFormat rejects an --output value render cannot honour.
func checkFormat(format string) error {
	for _, f := range supportedFormats {
		if format == f {
			return nil
		}
	}

	return fmt.Errorf("output format must be one of %v, got %q", supportedFormats, format)
}

// render writes v to the command's output in the configured format; text
// produces the line-oriented form.
func (a *app) render(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch format := a.v.GetString("output"); format {
	case formatText:
		return text(w)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("fail to marshal json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("fail to marshal yaml: %w", err)
		}
		return enc.Close()
	default:
		return checkFormat(format)
	}
}

// showPath prints the root path, which is empty, as "(root)".
func showPath(p lrpath.Path) string {
	if p.IsRoot() {
		return "(root)"
	}

	return p.String()
}

// joinFractions formats one tree level on a single line.
func joinFractions(fs []rational.Fraction) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}
