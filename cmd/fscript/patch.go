package main

import (
	"fmt"
	"os"

	"github.com/defable/fscript/encode"
	fpatch "github.com/defable/fscript/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patch.json>", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: patch applies to at most one file, got %v", cli.ErrUsage, args)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	p, err := fpatch.Decode(pd)
	if err != nil {
		return err
	}
	file := inputs(args)[0]
	target, err := getScriptFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := p.Apply(target)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
