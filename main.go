package main

import (
	"github.com/alecthomas/kong"

	"ramsvik.no/Olsmak/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Olsmak"), kong.Description("Olsmak is a live group beer-tasting voting server."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
