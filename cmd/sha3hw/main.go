// Command sha3hw computes reference digests for the hardware SHA3-512 core
// and HMAC controller, and checks them against values taken from
// simulation transcripts.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
