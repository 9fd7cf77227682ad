package main

import (
	"fmt"

	"github.com/cowwoc/lumina"
	"github.com/cowwoc/lumina/encode"

	"github.com/scott-cotton/cli"
)

func rel(cfg *RelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rel.Parse(cc, args)
	if err != nil {
		cfg.Rel.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rel requires one argument, a relation name", cli.ErrUsage)
	}
	relation := args[0]
	for _, file := range orStdin(args[1:]) {
		node, err := getObjFile(file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		res, err := cfg.resource(node, file)
		if err != nil {
			return err
		}
		if cfg.All {
			links, err := res.Resources(relation)
			if err != nil {
				return fmt.Errorf("error resolving %q in %s: %w", relation, file, err)
			}
			for i := range links {
				if err := printLink(cfg, cc, links[i]); err != nil {
					return err
				}
			}
			continue
		}
		link, err := res.Resource(relation)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", relation, file, err)
		}
		if err := printLink(cfg, cc, *link); err != nil {
			return err
		}
	}
	return nil
}

func printLink(cfg *RelConfig, cc *cli.Context, link lumina.Link) error {
	uri, err := link.URI()
	if err != nil {
		return err
	}
	if uri != nil {
		fmt.Fprintln(cc.Out, uri)
	}
	if !cfg.Verbose {
		return nil
	}
	res, ok := link.Resource()
	if !ok {
		return nil
	}
	return encode.Encode(res.Node(), cc.Out, cfg.encOpts(cc.Out)...)
}
