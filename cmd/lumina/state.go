package main

import (
	"fmt"

	"github.com/cowwoc/lumina/encode"

	"github.com/scott-cotton/cli"
)

func state(cfg *StateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.State.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		node, err := getObjFile(file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		res, err := cfg.resource(node, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(res.StateContainer(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
