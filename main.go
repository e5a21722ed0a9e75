// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/numguess/numguess/cmd/numguess"

func main() {
	cmd.Execute()
}
