package pagerank

// TransitionModel returns the probability of the surfer moving from page to
// each page of the corpus. With probability damping it follows one of the
// page's links chosen uniformly; otherwise it jumps to any page uniformly.
// A page without links jumps uniformly with probability 1.
func TransitionModel(c Corpus, page string, damping float64) map[string]float64 {
	n := float64(len(c))
	dist := make(map[string]float64, len(c))

	links := c[page]
	if len(links) == 0 {
		for p := range c {
			dist[p] = 1 / n
		}
		return dist
	}

	for p := range c {
		dist[p] = (1 - damping) / n
	}
	share := damping / float64(len(links))
	for _, l := range links {
		dist[l] += share
	}
	return dist
}
