// Command pomodoro drives the countdown without a window, keeping its state in
// a SQLite database.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("pomodoro"),
		kong.Description("Headless pomodoro countdown"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	g, err := newGlobal(cli, os.Stdout)
	ctx.FatalIfErrorf(err)
	defer g.Close()

	ctx.FatalIfErrorf(ctx.Run(g, cli))
}
