package main

import (
	"fmt"

	"github.com/cowwoc/lumina/encode"
	"github.com/cowwoc/lumina/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	for _, file := range orStdin(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc, file, path, cfg.List); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, file, query string, list bool) error {
	target, err := getObjFile(file, cfg.decOpts()...)
	if err != nil {
		return err
	}
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", file, err)
		}
		arr := ir.FromSlice(res)
		if err := encode.Encode(arr, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", file, err)
	}
	if res == nil {
		// don't encode anything and don't yell either
		return nil
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
