package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func links(cfg *LinksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Links.Parse(cc, args)
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
		ls, err := res.ResourceLinks()
		if err != nil {
			return fmt.Errorf("error listing links in %s: %w", file, err)
		}
		for i := range ls {
			uri, err := ls[i].URI()
			if err != nil {
				return err
			}
			if uri != nil {
				fmt.Fprintln(cc.Out, uri)
			}
		}
	}
	return nil
}
