package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/defable/fscript/encode"
	"github.com/defable/fscript/format"
	"github.com/defable/fscript/gomap"
	"github.com/defable/fscript/ir"
	"github.com/defable/fscript/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := dumpFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, w io.Writer, file string) error {
	d, err := readInput(cc, file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	opts := cfg.parseOpts()
	if !cfg.Partial {
		exprs, err := parse.Parse(d, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Map {
			return dumpMap(cfg, w, exprs)
		}
		return encode.Encode(exprs, w, cfg.encOpts(w)...)
	}
	exprs, rest, err := parse.Decode(d, opts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(exprs, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	if len(rest) != 0 {
		_, err = fmt.Fprintf(w, "# %d bytes not decoded at offset %d\n", len(rest), len(d)-len(rest))
	}
	return err
}

func dumpMap(cfg *DumpConfig, w io.Writer, exprs []*ir.Expression) error {
	m, err := gomap.ToMap(exprs)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if cfg.OutFormat != nil && *cfg.OutFormat == format.YAMLFormat {
		if d, err = yaml.JSONToYAML(d); err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}
