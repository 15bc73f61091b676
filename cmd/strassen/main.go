// SPDX-License-Identifier: MIT

// Command strassen multiplies random square matrices over Z/pZ with
// Strassen's algorithm, sequentially, on an in-process group of seven, or on
// a TCP star of seven processes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
