package main

import (
	"context"
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger writes text to a terminal and JSON anywhere else.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func run(args []string, out io.Writer) error {
	var (
		p           params
		collections []string
		verbose     bool
	)
	flags := flag.NewFlagSet("eventbench", flag.ContinueOnError)
	flags.IntVarP(&p.keys, "keys", "k", 16, "Number of distinct event keys to populate")
	flags.IntVarP(&p.handlers, "handlers", "n", 4, "Number of handlers subscribed per key")
	flags.IntVarP(&p.rounds, "rounds", "r", 1000, "Number of times every key is invoked")
	flags.StringSliceVarP(&collections, "collections", "c", collectionNames(), "Handler collections to measure")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enables debug logging")
	flags.SetOutput(out)
	flags.Usage = func() {
		fmt.Fprintln(out, "eventbench measures the cost of populating and invoking keyed handler collections.")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}

	logger := newLogger(out, verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, name := range collections {
		logger.Debug("Measuring collection", "collection", name, "keys", p.keys, "handlers", p.handlers, "rounds", p.rounds)
		res, err := measure(ctx, name, p)
		if err != nil {
			return err
		}
		logger.Info("Measured collection",
			"collection", res.collection,
			"populate", res.populate,
			"invoke", res.invoke,
			"perInvoke", res.perInvoke(p),
			"heapBytes", res.heapBytes,
			"calls", res.calls,
		)
	}
	return nil
}
