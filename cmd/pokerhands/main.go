package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config string `help:"Path to HCL configuration file" default:"pokerhands.hcl" type:"path"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Tally    TallyCmd         `cmd:"" default:"withargs" help:"Tally head-to-head wins from lines of paired hands"`
	Classify ClassifyCmd      `cmd:"" help:"Classify one or more five-card hands"`
	Compare  CompareCmd       `cmd:"" help:"Compare two five-card hands"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Classify five-card poker hands and tally head-to-head winners"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
