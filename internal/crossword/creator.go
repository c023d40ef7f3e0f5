package crossword

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf8"
)

// Assignment maps variables to the words placed in them.
type Assignment map[Variable]string

// Creator solves a Crossword. Domains start as the full vocabulary for
// every variable and shrink as constraints are enforced.
type Creator struct {
	crossword *Crossword
	Domains   map[Variable][]string

	// letters caches every word as runes so overlaps compare characters.
	letters map[string][]rune
}

func NewCreator(c *Crossword) *Creator {
	domains := make(map[Variable][]string, len(c.Variables))
	for _, v := range c.Variables {
		domains[v] = slices.Clone(c.Words)
	}

	letters := make(map[string][]rune, len(c.Words))
	for _, w := range c.Words {
		letters[w] = []rune(w)
	}
	return &Creator{crossword: c, Domains: domains, letters: letters}
}

// agree reports whether the x-th character of wx matches the y-th of wy.
func (c *Creator) agree(wx string, x int, wy string, y int) bool {
	lx, ly := c.runes(wx), c.runes(wy)
	return x < len(lx) && y < len(ly) && lx[x] == ly[y]
}

func (c *Creator) runes(w string) []rune {
	if l, ok := c.letters[w]; ok {
		return l
	}
	return []rune(w)
}

// Solve enforces node and arc consistency and then searches for a complete
// assignment.
func (c *Creator) Solve(ctx context.Context) (Assignment, error) {
	c.EnforceNodeConsistency()
	if !c.AC3(nil) {
		return nil, ErrNoSolution
	}

	a, err := c.Backtrack(ctx, make(Assignment))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoSolution
	}
	return a, nil
}

// EnforceNodeConsistency drops every word whose length does not fit its variable.
func (c *Creator) EnforceNodeConsistency() {
	for v, words := range c.Domains {
		c.Domains[v] = slices.DeleteFunc(words, func(w string) bool {
			return utf8.RuneCountInString(w) != v.Length
		})
	}
}

// Revise makes x arc consistent with y by dropping every word of x that no
// word of y agrees with at their shared cell. It reports whether the domain
// of x changed.
func (c *Creator) Revise(x, y Variable) bool {
	o, ok := c.crossword.Overlap(x, y)
	if !ok {
		return false
	}

	before := len(c.Domains[x])
	c.Domains[x] = slices.DeleteFunc(c.Domains[x], func(wx string) bool {
		return !slices.ContainsFunc(c.Domains[y], func(wy string) bool {
			return c.agree(wx, o.X, wy, o.Y)
		})
	})
	return len(c.Domains[x]) != before
}

// AC3 enforces arc consistency starting from arcs, or from every arc of the
// crossword when arcs is nil. It reports false once a domain is empty.
func (c *Creator) AC3(arcs []Arc) bool {
	if arcs == nil {
		arcs = c.crossword.Arcs()
	}

	queue := slices.Clone(arcs)
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]

		if !c.Revise(arc.X, arc.Y) {
			continue
		}
		if len(c.Domains[arc.X]) == 0 {
			return false
		}
		for _, z := range c.crossword.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// AssignmentComplete reports whether every variable has a word.
func (c *Creator) AssignmentComplete(a Assignment) bool {
	for _, v := range c.crossword.Variables {
		if _, ok := a[v]; !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether the words of a are distinct, fit their
// variables and agree wherever two variables overlap.
func (c *Creator) Consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for v, w := range a {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}

		if utf8.RuneCountInString(w) != v.Length {
			return false
		}

		for _, n := range c.crossword.Neighbors(v) {
			wn, ok := a[n]
			if !ok {
				continue
			}
			o, _ := c.crossword.Overlap(v, n)
			if !c.agree(w, o.X, wn, o.Y) {
				return false
			}
		}
	}
	return true
}

// OrderDomainValues returns the words of v ordered by how many words they
// would rule out for unassigned neighbors, fewest first.
func (c *Creator) OrderDomainValues(v Variable, a Assignment) []string {
	ruledOut := make(map[string]int, len(c.Domains[v]))
	for _, w := range c.Domains[v] {
		for _, n := range c.crossword.Neighbors(v) {
			if _, assigned := a[n]; assigned {
				continue
			}
			o, _ := c.crossword.Overlap(v, n)
			for _, wn := range c.Domains[n] {
				if !c.agree(w, o.X, wn, o.Y) {
					ruledOut[w]++
				}
			}
		}
	}

	ordered := slices.Clone(c.Domains[v])
	slices.SortStableFunc(ordered, func(a, b string) int {
		return ruledOut[a] - ruledOut[b]
	})
	return ordered
}

// SelectUnassignedVariable picks the unassigned variable with the fewest
// remaining words, breaking ties by the most neighbors and then by variable
// order. It reports false when every variable is assigned.
func (c *Creator) SelectUnassignedVariable(a Assignment) (Variable, bool) {
	var (
		best  Variable
		found bool
	)
	for _, v := range c.crossword.Variables {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !found || c.better(v, best) {
			best, found = v, true
		}
	}
	return best, found
}

func (c *Creator) better(v, than Variable) bool {
	dv, dt := len(c.Domains[v]), len(c.Domains[than])
	if dv != dt {
		return dv < dt
	}
	return len(c.crossword.Neighbors(v)) > len(c.crossword.Neighbors(than))
}

// Backtrack extends a depth first until it is complete. It returns a nil
// assignment when no completion exists and stops early when ctx is done.
func (c *Creator) Backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("backtrack: %w", err)
	}

	v, ok := c.SelectUnassignedVariable(a)
	if !ok {
		return a, nil
	}

	for _, w := range c.OrderDomainValues(v, a) {
		a[v] = w
		if c.Consistent(a) {
			result, err := c.Backtrack(ctx, a)
			if err != nil || result != nil {
				return result, err
			}
		}
		delete(a, v)
	}
	return nil, nil
}
