package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lumina").
		WithSynopsis("lumina [opts] command [opts]").
		WithDescription("lumina is a tool for working with hypermedia documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return luminaMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			RelCommand(cfg),
			PropCommand(cfg),
			StateCommand(cfg),
			LinksCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view document files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-l] <objectpath> [files]").
		WithDescription("get document elements from files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func RelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rel").
		WithAliases("r", "re").
		WithSynopsis("rel [-all] [-v] <relation> [files]").
		WithDescription("resolve a relation to linked resources").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rel(cfg, cc, args)
		})
	cfg.Rel = cmd
	return cmd
}

func PropCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PropConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("prop").
		WithAliases("pr").
		WithSynopsis("prop <name> [files]").
		WithDescription("look up a resource property by name").
		WithRun(func(cc *cli.Context, args []string) error {
			return prop(cfg, cc, args)
		})
	cfg.Prop = cmd
	return cmd
}

func StateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StateConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("state").
		WithAliases("s", "st").
		WithSynopsis("state [files]").
		WithDescription("print the state container of a resource").
		WithRun(func(cc *cli.Context, args []string) error {
			return state(cfg, cc, args)
		})
	cfg.State = cmd
	return cmd
}

func LinksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LinksConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("links").
		WithAliases("ln").
		WithSynopsis("links [files]").
		WithDescription("list the links in a resource's state array").
		WithRun(func(cc *cli.Context, args []string) error {
			return links(cfg, cc, args)
		})
	cfg.Links = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff hypermedia documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply a json patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
