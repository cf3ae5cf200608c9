package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/defable/fscript/parse"
	"github.com/defable/fscript/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

type checkResult struct {
	file  string
	exprs int
	err   error
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	results := make([]checkResult, len(args))
	g := &errgroup.Group{}
	g.SetLimit(max(cfg.Jobs, 1))
	for i, file := range args {
		g.Go(func() error {
			results[i] = checkFile(cfg, file)
			return nil
		})
	}
	g.Wait()

	red := color.New(color.FgRed).SprintFunc()
	colors := cfg.colors(cc.Out)
	failed, total := 0, 0
	for _, res := range results {
		if res.err == nil {
			total += res.exprs
			continue
		}
		failed++
		if cfg.Quiet {
			continue
		}
		msg := res.file + ":" + errLocation(res.err) + ": " + res.err.Error()
		if colors {
			msg = red(msg)
		}
		fmt.Fprintln(cc.Out, msg)
	}
	if failed != 0 {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%d of %d files failed\n", failed, len(args))
		}
		return cli.ExitCodeErr(1)
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%d files ok, %d top level expressions\n", len(args), total)
	}
	return nil
}

func checkFile(cfg *CheckConfig, file string) checkResult {
	d, err := os.ReadFile(file)
	if err != nil {
		return checkResult{file: file, err: err}
	}
	exprs, err := parse.Parse(d, cfg.parseOpts()...)
	return checkResult{file: file, exprs: len(exprs), err: err}
}

// errLocation renders the one based line:col of a decode error.
func errLocation(err error) string {
	var de *token.DecodeErr
	if !errors.As(err, &de) || de.Pos.D == nil {
		return "0:0"
	}
	l, c := de.Pos.LineCol()
	return fmt.Sprintf("%d:%d", l+1, c+1)
}
