package main

import (
	"fmt"

	"github.com/cowwoc/lumina/encode"

	"github.com/scott-cotton/cli"
)

func prop(cfg *PropConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prop.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: prop requires one argument, a property name", cli.ErrUsage)
	}
	name := args[0]
	for _, file := range orStdin(args[1:]) {
		node, err := getObjFile(file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		res, err := cfg.resource(node, file)
		if err != nil {
			return err
		}
		p, err := res.Property(name)
		if err != nil {
			return fmt.Errorf("error looking up %q in %s: %w", name, file, err)
		}
		if err := encode.Encode(p.Value(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
