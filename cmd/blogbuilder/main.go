package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/cmd/blogbuilder/commands"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("blogbuilder"),
		kong.Description("Static blog builder: validates articles and generates pages, index, and feed."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
