package main

import (
	"context"
	"fmt"

	"github.com/funvibe/objcore/internal/host"
	"github.com/funvibe/objcore/internal/objsys"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func newDemoCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the spec scenarios (simple override, filter, diamond, private shield, unknown fallback) and print the resulting chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, _ := zap.NewDevelopment()
				objsys.SetLogger(l)
			}
			return runDemo()
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log epoch bumps")
	return cmd
}

func runDemo() error {
	color := isatty.IsTerminal(os.Stdout.Fd())
	s := buildScenario()
	ctx := context.Background()

	section("S1: simple override (b.m)", color)
	cc, err := s.f.GetCallContext(s.objB, s.mName, objsys.Public)
	if err != nil {
		return err
	}
	defer cc.Close()
	printChain("b.m", cc.Chain())
	result, err := cc.Invoke(ctx, []host.Value{host.String("b"), host.String("m")})
	if err != nil {
		return err
	}
	fmt.Printf("  => %s\n\n", result.Inspect())

	section("S2: filter wraps implementation (c.m)", color)
	cc2, err := s.f.GetCallContext(s.objC, s.mName, objsys.Public)
	if err != nil {
		return err
	}
	defer cc2.Close()
	printChain("c.m", cc2.Chain())
	result2, err := cc2.Invoke(ctx, []host.Value{host.String("c"), host.String("m")})
	if err != nil {
		return err
	}
	fmt.Printf("  => %s\n\n", result2.Inspect())

	section("S3: diamond with lateness (d.m)", color)
	cc3, err := s.f.GetCallContext(s.objD, s.mName, objsys.Public)
	if err != nil {
		return err
	}
	defer cc3.Close()
	printChain("d.m", cc3.Chain())
	result3, err := cc3.Invoke(ctx, []host.Value{host.String("d"), host.String("m")})
	if err != nil {
		return err
	}
	fmt.Printf("  => %s\n\n", result3.Inspect())

	section("S4: private shield (l.p, public request)", color)
	if _, err := s.f.GetCallContext(s.objL, s.pName, objsys.Public); err != nil {
		fmt.Printf("  public request rejected: %v\n\n", err)
	}
	ccPriv, err := s.f.GetCallContext(s.objL, s.pName, objsys.Private)
	if err == nil {
		defer ccPriv.Close()
		printChain("l.p (private)", ccPriv.Chain())
	}

	section("S6: unknown fallback (d.zzz)", color)
	zzz := s.f.Names.Intern("zzz")
	ccU, err := s.f.GetCallContext(s.objD, zzz, objsys.Public)
	if err != nil {
		fmt.Printf("  d.zzz => %v\n", err)
	} else {
		defer ccU.Close()
		printChain("d.zzz (unknown)", ccU.Chain())
		resultU, err := ccU.Invoke(ctx, []host.Value{host.String("d"), host.String("zzz")})
		if err != nil {
			return err
		}
		fmt.Printf("  => %s\n", resultU.Inspect())
	}

	return nil
}

func section(title string, color bool) {
	if color {
		fmt.Printf("\033[1m== %s ==\033[0m\n", title)
	} else {
		fmt.Printf("== %s ==\n", title)
	}
}
