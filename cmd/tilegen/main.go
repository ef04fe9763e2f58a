// Command tilegen generates Go tile types from YAML vocabularies and
// inspects grid files against them.
package main

import (
	"os"

	"github.com/katalvlaran/gridkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
