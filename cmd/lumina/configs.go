package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cowwoc/lumina"
	"github.com/cowwoc/lumina/decode"
	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/format"
	"github.com/cowwoc/lumina/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	InFormat *format.Format

	Base string `cli:"name=base desc='base uri for the document root'"`

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

func (cfg *MainConfig) decOpts() []decode.Option {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []decode.Option{
		decode.WithFormat(fmat),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.WireOut {
		res = append(res, encode.Compact())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// baseURI returns the document root's canonical URI: the -base flag when
// given, else a file URI, else about:stdin.
func (cfg *MainConfig) baseURI(file string) (*url.URL, error) {
	if cfg.Base != "" {
		u, err := url.Parse(cfg.Base)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base uri %q: %w", cli.ErrUsage, cfg.Base, err)
		}
		return u, nil
	}
	if file == "-" {
		return url.Parse("about:stdin")
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "file", Path: abs}, nil
}

func (cfg *MainConfig) resource(node *ir.Node, file string) (*lumina.Resource, error) {
	base, err := cfg.baseURI(file)
	if err != nil {
		return nil, err
	}
	return lumina.New(node, base, "$")
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	List bool `cli:"name=l aliases=list desc='list every match'"`

	Get *cli.Command
}

type RelConfig struct {
	*MainConfig

	All     bool `cli:"name=all desc='resolve every match'"`
	Verbose bool `cli:"name=v desc='print included state'"`

	Rel *cli.Command
}

type PropConfig struct {
	*MainConfig

	Prop *cli.Command
}

type StateConfig struct {
	*MainConfig

	State *cli.Command
}

type LinksConfig struct {
	*MainConfig

	Links *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
