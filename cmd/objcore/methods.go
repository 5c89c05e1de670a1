package main

import (
	"fmt"
	"strings"

	"github.com/funvibe/objcore/internal/objsys"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	var private bool
	cmd := &cobra.Command{
		Use:   "methods {b|c|d|l}",
		Short: "Print the sorted visible method list for one of the demo scenario's objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := buildScenario()
			obj := map[string]*objsys.Object{"b": s.objB, "c": s.objC, "d": s.objD, "l": s.objL}[args[0]]
			if obj == nil {
				return fmt.Errorf("unknown object %q (want one of b, c, d, l)", args[0])
			}
			flags := objsys.Public
			if private {
				flags = objsys.Private
			}
			names := objsys.GetSortedMethodList(obj, flags)
			fmt.Println(strings.Join(names, "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&private, "private", false, "include private methods visible from the object's own self-class")
	return cmd
}
