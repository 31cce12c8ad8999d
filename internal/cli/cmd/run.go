package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hallicrake/lc3/internal/cli"
	"github.com/hallicrake/lc3/internal/log"
	"github.com/hallicrake/lc3/internal/tty"
	"github.com/hallicrake/lc3/internal/vm"
)

// Runner returns the "run" sub-command: load one or more raw LC-3 images
// and execute them on a fresh machine.
func Runner() cli.Command {
	return &runner{log: log.DefaultLogger()}
}

type runner struct {
	logLevel slog.Level
	log      *log.Logger
}

func (runner) Description() string {
	return "run one or more LC-3 object images"
}

func (runner) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `run image.obj [image.obj]...

Loads each image in order, overlaying earlier images where origins
overlap, then runs the machine from the conventional user-space origin
until it halts or faults.`)

	return err
}

func (r *runner) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Func("loglevel", "set log `level`", func(s string) error {
		return r.logLevel.UnmarshalText([]byte(s))
	})

	return fs
}

// Run loads each named image and executes the machine. Exit codes:
//
//	0  the machine halted cleanly
//	1  an image failed to load, or the machine faulted or was cancelled
//	2  no image was given
func (r *runner) Run(ctx context.Context, args []string, _ io.Writer, logger *log.Logger) int {
	log.LevelVar.Set(r.logLevel)

	if len(args) == 0 {
		logger.Error("run: no image given")
		return 2
	}

	var term vm.Terminal

	if console, err := tty.NewConsole(os.Stdin, os.Stdout); err == nil {
		defer console.Close()
		term = console
	} else {
		logger.Debug("no tty, falling back to line console", "err", err)
		term = tty.NewLineConsole(os.Stdin, os.Stdout)
	}

	machine := vm.New(vm.WithLogger(logger), vm.WithTerminal(term))
	loader := vm.NewLoader(machine)

	for _, name := range args {
		if err := r.loadImage(loader, name); err != nil {
			logger.Error("failed to load image", "file", name, "err", err)
			return 1
		}
	}

	if err := machine.Run(ctx); err != nil {
		logger.Error("machine fault", "err", err)
		return 1
	}

	return 0
}

func (r *runner) loadImage(loader *vm.Loader, name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	origin, count, err := loader.Load(file)
	if err != nil {
		return err
	}

	r.log.Debug("loaded image", "file", name, "origin", origin, "words", count)

	return nil
}
