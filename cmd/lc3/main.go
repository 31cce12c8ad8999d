// Command lc3 runs LC-3 object images on a simulated machine.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hallicrake/lc3/internal/cli"
	"github.com/hallicrake/lc3/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands := []cli.Command{
		cmd.Runner(),
	}

	commander := cli.New(ctx).
		WithCommands(commands).
		WithHelp(cmd.Help(commands)).
		WithLogger(os.Stderr)

	// Image files may be given directly (lc3 <image-file>...): anything that
	// does not name a command, including no arguments at all, goes to run.
	args := os.Args[1:]
	if len(args) == 0 || (args[0] != "run" && args[0] != "help") {
		args = append([]string{"run"}, args...)
	}

	os.Exit(commander.Execute(args))
}
