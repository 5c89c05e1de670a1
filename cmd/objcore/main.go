// Command objcore is a small CLI front end over the method-resolution
// core (internal/objsys), built with cobra in the manner of the example
// pack's erigon and gcsfuse CLIs (both use github.com/spf13/cobra),
// replacing the teacher's hand-rolled flag parsing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "objcore",
		Short: "Inspect and exercise the object-system method-resolution core",
	}
	root.AddCommand(newDemoCmd())
	root.AddCommand(newMethodsCmd())
	root.AddCommand(newTopologyCmd())
	return root
}
