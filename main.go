package main

import (
	"fmt"
	"os"

	"tasklens/cmd"
)

// Populated by the linker on release builds; the defaults mark a local
// development build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
