package main

import (
	"fmt"
	"io"
	"os"

	"github.com/defable/fscript/encode"
	"github.com/defable/fscript/format"
	"github.com/defable/fscript/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render with color'"`
	Strict   bool `cli:"name=strict desc='only accept an empty value before a terminator'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting of calls and markup'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.StrictNone())
	}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

// colors reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
	}
	if fmt == format.OutlineFormat && cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Partial bool `cli:"name=partial desc='render what decodes and report the remainder'"`
	Map     bool `cli:"name=map desc='render named expressions as a json or yaml map'"`
	Dump    *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Jobs  int  `cli:"name=j desc='number of files decoded in parallel'"`
	Quiet bool `cli:"name=q desc='only set the exit status'"`
	Check *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr  string `cli:"name=e desc='expr-lang predicate'"`
	Paths bool   `cli:"name=paths desc='print only tree paths'"`
	Query *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Pattern string `cli:"name=m desc='script file holding the pattern'"`
	Trim    bool   `cli:"name=trim desc='print the matched parts of each document'"`
	Match   *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='RFC 6902 JSON patch file'"`
	Patch     *cli.Command
}
