package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/brisklang/brisk/compiler"
	"github.com/brisklang/brisk/compiler/amd64"
	"github.com/brisklang/brisk/compiler/parse"
)

func main() {
	parseCmd := &cli.Command{
		Name:   "parse",
		Action: parseAct,
		Args:   cli.Args{},
	}

	livenessCmd := &cli.Command{
		Name:   "liveness",
		Action: livenessAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "brisk",
		Description: "brisk is a tool for inspecting brisk backend blocks",
		Commands: []*cli.Command{
			parseCmd,
			livenessCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		st := parse.New()
		st.AddFile(ctx, a, text)

		code, err := st.Parse(ctx)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		fmt.Printf("%s", amd64.AppendBlock(nil, code))
	}

	return nil
}

func livenessAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		rep, err := compiler.AnalyzeFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "analyze %v", a)
		}

		fmt.Printf("%s", rep)
	}

	return nil
}
