package main

import (
	"fmt"
	"strings"

	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := getObjFile(args[0], cfg.decOpts()...)
	if err != nil {
		return err
	}
	b, err := getObjFile(args[1], cfg.decOpts()...)
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		return nil
	}
	aText, err := encode.Bytes(a)
	if err != nil {
		return err
	}
	bText, err := encode.Bytes(b)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	aCh, bCh, lines := diffCfg.DiffLinesToChars(string(aText), string(bText))
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(aCh, bCh, false), lines)
	for i := range diffs {
		d := &diffs[i]
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
		}
	}
	return cli.ExitCodeErr(1)
}
