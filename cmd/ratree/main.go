// SPDX-License-Identifier: MIT

// Command ratree navigates the Stern-Brocot and Calkin-Wilf trees from the
// command line.
package main

import "github.com/katalvlaran/ratree/cmd/ratree/cmd"

func main() {
	cmd.Execute()
}
