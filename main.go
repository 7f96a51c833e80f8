package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BrewWolf/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BrewWolf"), kong.Description("BrewWolf keeps track of beers and what people thought of them."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
