package main

import (
	"fmt"

	"github.com/defable/fscript"
	"github.com/defable/fscript/encode"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Pattern == "" {
		return fmt.Errorf("%w: match requires -m <pattern>", cli.ErrUsage)
	}
	pattern, err := getScriptFile(cc, cfg.Pattern, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding pattern %s: %w", cfg.Pattern, err)
	}
	matched := 0
	for _, file := range inputs(args) {
		doc, err := getScriptFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !fscript.Match(doc, pattern) {
			continue
		}
		matched++
		if !cfg.Trim {
			fmt.Fprintln(cc.Out, file)
			continue
		}
		fmt.Fprintf(cc.Out, "# %s\n", file)
		if err := encode.Encode(fscript.Trim(pattern, doc), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
