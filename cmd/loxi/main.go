// Command loxi is the command-line driver for the loxi interpreter. It
// exposes the four pipeline stages spec.md §7 names as subcommands:
// tokenize, parse, evaluate, and run.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
