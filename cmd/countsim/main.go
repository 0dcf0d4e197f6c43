package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run a card-counting simulation"`
	Validate ValidateCmd      `cmd:"" help:"Check a profile without running it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("countsim"),
		kong.Description("Blackjack card-counting simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
