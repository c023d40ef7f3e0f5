package pagerank

import (
	"fmt"
	"math"
)

const maxIterations = 10000

// Iterate computes PageRank by repeatedly applying
//
//	PR(p) = (1 - d) / N + d * Σ PR(i) / NumLinks(i)
//
// over every page i linking to p, where a page without links counts as
// linking to every page. It stops once no value moves by threshold or more.
// A non-positive threshold means DefaultThreshold.
func Iterate(c Corpus, damping, threshold float64) (Ranks, error) {
	if err := validate(c, damping); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	g := newGraph(c)
	n := float64(len(g.pages))

	rank := make([]float64, len(g.pages))
	for i := range rank {
		rank[i] = 1 / n
	}
	next := make([]float64, len(g.pages))

	for range maxIterations {
		dangling := 0.0
		for i := range next {
			next[i] = (1 - damping) / n
			if len(g.links[i]) == 0 {
				dangling += rank[i]
			}
		}

		for i, links := range g.links {
			if len(links) == 0 {
				continue
			}
			share := damping * rank[i] / float64(len(links))
			for _, j := range links {
				next[j] += share
			}
		}

		delta := 0.0
		for i := range next {
			next[i] += damping * dangling / n
			delta = math.Max(delta, math.Abs(next[i]-rank[i]))
		}

		rank, next = next, rank
		if delta < threshold {
			return g.ranks(rank), nil
		}
	}

	return g.ranks(rank), fmt.Errorf("%w after %d iterations", ErrNotConverged, maxIterations)
}
