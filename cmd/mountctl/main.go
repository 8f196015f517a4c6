// Command mountctl inspects how rendercore binds render nodes to content.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/rendercore/cmd/mountctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mountctl:", err)
		os.Exit(1)
	}
}
