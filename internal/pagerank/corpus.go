// Package pagerank ranks the pages of a small linked corpus, either by
// simulating a random surfer or by iterating the PageRank formula.
package pagerank

import (
	"errors"
	"maps"
	"slices"
)

const (
	DefaultDamping   = 0.85
	DefaultSamples   = 10000
	DefaultThreshold = 0.001
)

var (
	ErrEmptyCorpus    = errors.New("pagerank: corpus has no pages")
	ErrInvalidDamping = errors.New("pagerank: damping factor must be within [0, 1]")
	ErrInvalidSamples = errors.New("pagerank: sample count must be positive")
	ErrNotConverged   = errors.New("pagerank: iteration did not converge")
)

// Corpus maps each page to the pages it links to. Link lists are sorted,
// free of duplicates and self links, and only name pages of the corpus.
type Corpus map[string][]string

// Ranks maps each page to its PageRank. The values sum to 1.
type Ranks map[string]float64

// NewCorpus normalises raw link lists into a Corpus.
func NewCorpus(links map[string][]string) Corpus {
	c := make(Corpus, len(links))
	for page, targets := range links {
		kept := make([]string, 0, len(targets))
		for _, t := range targets {
			if t == page {
				continue
			}
			if _, ok := links[t]; !ok {
				continue
			}
			kept = append(kept, t)
		}
		slices.Sort(kept)
		c[page] = slices.Compact(kept)
	}
	return c
}

// Pages returns the page names in sorted order.
func (c Corpus) Pages() []string {
	return slices.Sorted(maps.Keys(c))
}

func validate(c Corpus, damping float64) error {
	if len(c) == 0 {
		return ErrEmptyCorpus
	}
	if damping < 0 || damping > 1 {
		return ErrInvalidDamping
	}
	return nil
}

// graph is the corpus indexed by position in sorted page order.
type graph struct {
	pages []string
	links [][]int
}

func newGraph(c Corpus) *graph {
	pages := c.Pages()
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		index[p] = i
	}

	links := make([][]int, len(pages))
	for i, p := range pages {
		for _, t := range c[p] {
			links[i] = append(links[i], index[t])
		}
	}

	return &graph{pages: pages, links: links}
}

func (g *graph) ranks(values []float64) Ranks {
	r := make(Ranks, len(g.pages))
	for i, p := range g.pages {
		r[p] = values[i]
	}
	return r
}
