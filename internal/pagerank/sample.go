package pagerank

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

const cancelCheckEvery = 1024

// Options tune Sample. The zero value runs one unseeded chain.
type Options struct {
	// Chains is the number of independent surfers sampled in parallel.
	Chains int
	// Seed makes the result reproducible for a given number of chains.
	Seed *uint64
}

// Sample estimates PageRank from n pages visited by random surfers.
// Each surfer starts on a uniformly chosen page and moves according to
// TransitionModel. The n samples are split across opts.Chains surfers.
func Sample(ctx context.Context, c Corpus, damping float64, n int, opts Options) (Ranks, error) {
	if err := validate(c, damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSamples, n)
	}

	chains := min(max(opts.Chains, 1), n)
	g := newGraph(c)

	counts := make([][]int, chains)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range chains {
		steps := n / chains
		if i < n%chains {
			steps++
		}

		rng := newChainRand(opts.Seed, i)
		counts[i] = make([]int, len(g.pages))
		eg.Go(func() error {
			return g.walk(egCtx, rng, damping, steps, counts[i])
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("sample pagerank: %w", err)
	}

	freq := make([]float64, len(g.pages))
	for _, chain := range counts {
		for p, k := range chain {
			freq[p] += float64(k)
		}
	}
	for p := range freq {
		freq[p] /= float64(n)
	}

	return g.ranks(freq), nil
}

func newChainRand(seed *uint64, chain int) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, uint64(chain)))
}

// walk records steps pages visited by one surfer in counts.
func (g *graph) walk(ctx context.Context, rng *rand.Rand, damping float64, steps int, counts []int) error {
	page := rng.IntN(len(g.pages))
	counts[page]++

	for step := 1; step < steps; step++ {
		if step%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		page = g.next(rng, page, damping)
		counts[page]++
	}
	return nil
}

// next draws from TransitionModel as the mixture it is: a link of page with
// probability damping, otherwise any page.
func (g *graph) next(rng *rand.Rand, page int, damping float64) int {
	links := g.links[page]
	if len(links) > 0 && rng.Float64() < damping {
		return links[rng.IntN(len(links))]
	}
	return rng.IntN(len(g.pages))
}
