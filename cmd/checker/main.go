// Command checker queries a service's public status page and reports
// active incidents.
package main

import (
	"fmt"
	"os"

	"github.com/statuswatch/checker/internal/checker"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(checker.ExitCode(err))
	}
}
