// Command glint highlights regular-expression matches in text for the
// terminal, either as a one-shot filter or as an interactive viewer with
// search-as-you-type.
package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionString := fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	setVersion(versionString)
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
