package main

import (
	"fmt"

	"github.com/defable/fscript/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e <expr>", cli.ErrUsage)
	}
	q, err := eval.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args)
	for _, file := range files {
		exprs, err := getScriptFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		found, err := q.Select(exprs)
		if err != nil {
			return err
		}
		for _, f := range found {
			line := f.Path
			if !cfg.Paths {
				line += "\t" + f.Expression.String()
			}
			if len(files) > 1 {
				line = file + ":" + line
			}
			if _, err := fmt.Fprintln(cc.Out, line); err != nil {
				return err
			}
		}
	}
	return nil
}
