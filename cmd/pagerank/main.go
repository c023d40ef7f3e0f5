// Command pagerank ranks the HTML pages of a directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ferdiebergado/thinkbox/internal/pagerank"
	"github.com/ferdiebergado/thinkbox/internal/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.SetupLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"), os.Stderr)

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("pagerank failed.", "reason", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pagerank", flag.ContinueOnError)
	samples := fs.Int("samples", pagerank.DefaultSamples, "number of pages visited by the random surfer")
	damping := fs.Float64("damping", pagerank.DefaultDamping, "probability of following a link")
	chains := fs.Int("chains", 1, "number of surfers sampled in parallel")
	seed := fs.Int64("seed", -1, "random seed; negative for a random run")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: pagerank [flags] corpus-dir")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one corpus directory, got %d arguments", fs.NArg())
	}

	corpus, err := pagerank.Crawl(os.DirFS(fs.Arg(0)))
	if err != nil {
		return err
	}

	opts := pagerank.Options{Chains: *chains}
	if *seed >= 0 {
		s := uint64(*seed)
		opts.Seed = &s
	}

	sampled, err := pagerank.Sample(ctx, corpus, *damping, *samples, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PageRank Results from Sampling (n = %d)\n", *samples)
	printRanks(out, corpus, sampled)

	iterated, err := pagerank.Iterate(corpus, *damping, pagerank.DefaultThreshold)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "PageRank Results from Iteration")
	printRanks(out, corpus, iterated)

	return nil
}

func printRanks(out io.Writer, corpus pagerank.Corpus, ranks pagerank.Ranks) {
	for _, page := range corpus.Pages() {
		fmt.Fprintf(out, "  %s: %.4f\n", page, ranks[page])
	}
}
