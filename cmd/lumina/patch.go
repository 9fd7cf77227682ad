package main

import (
	"fmt"

	"github.com/cowwoc/lumina/decode"
	"github.com/cowwoc/lumina/encode"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch file", cli.ErrUsage)
	}
	pNode, err := getObjFile(args[0], cfg.decOpts()...)
	if err != nil {
		return err
	}
	pBytes, err := encode.Bytes(pNode, encode.Compact())
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pBytes)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, file := range orStdin(args[1:]) {
		target, err := getObjFile(file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		tBytes, err := encode.Bytes(target, encode.Compact())
		if err != nil {
			return err
		}
		patched, err := ops.Apply(tBytes)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		res, err := decode.Parse(patched, decode.JSON())
		if err != nil {
			return fmt.Errorf("error re-decoding %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
