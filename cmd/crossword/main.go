// Command crossword fills a crossword structure with words from a list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ferdiebergado/thinkbox/internal/crossword"
	"github.com/ferdiebergado/thinkbox/internal/pkg/logging"
)

const usage = "Usage: crossword structure words [output.png]"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.SetupLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"), os.Stderr)

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("crossword failed.", "reason", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New(usage)
	}

	structure, err := readFile(args[0], crossword.ParseStructure)
	if err != nil {
		return err
	}

	words, err := readFile(args[1], crossword.ParseWords)
	if err != nil {
		return err
	}

	cw, err := crossword.New(structure, words)
	if err != nil {
		return err
	}

	a, err := crossword.NewCreator(cw).Solve(ctx)
	if errors.Is(err, crossword.ErrNoSolution) {
		fmt.Fprintln(out, "No solution.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := cw.Render(out, a); err != nil {
		return err
	}

	if len(args) == 3 {
		return cw.SavePNG(args[2], a)
	}
	return nil
}

func readFile[T any](name string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
