package main

import (
	"fmt"

	"github.com/funvibe/objcore/internal/objsys"
	"github.com/funvibe/objcore/internal/topology"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTopologyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Dump the demo scenario's class relationship graph as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := buildScenario()
			roots := []*objsys.Class{s.f.RootClass, s.f.ClassOfClasses}
			snap := topology.Capture(s.f, roots)
			out, err := yaml.Marshal(snap)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	return cmd
}
