package minesweeper

import (
	"math/rand/v2"
	"slices"
)

// AI plays Minesweeper from the counts it has been told, never from the hidden board.
type AI struct {
	Height    int         `json:"height"`
	Width     int         `json:"width"`
	MovesMade CellSet     `json:"moves_made"`
	Mines     CellSet     `json:"mines"`
	Safes     CellSet     `json:"safes"`
	Knowledge []*Sentence `json:"knowledge"`
}

func NewAI(height, width int) *AI {
	return &AI{
		Height:    height,
		Width:     width,
		MovesMade: make(CellSet),
		Mines:     make(CellSet),
		Safes:     make(CellSet),
	}
}

// MarkMine records c as a mine in the AI and in every sentence.
func (ai *AI) MarkMine(c Cell) {
	ai.Mines.Add(c)
	for _, s := range ai.Knowledge {
		s.MarkMine(c)
	}
}

// MarkSafe records c as safe in the AI and in every sentence.
func (ai *AI) MarkSafe(c Cell) {
	ai.Safes.Add(c)
	for _, s := range ai.Knowledge {
		s.MarkSafe(c)
	}
}

// AddKnowledge is called when the board reveals that the safe cell c has
// count mines around it. It records the move, adds the new sentence and
// then draws conclusions until nothing new can be inferred.
func (ai *AI) AddKnowledge(c Cell, count int) {
	ai.MovesMade.Add(c)
	ai.MarkSafe(c)

	undetermined := make(CellSet)
	for _, n := range neighbors(c, ai.Height, ai.Width) {
		switch {
		case ai.Mines.Has(n):
			count--
		case ai.Safes.Has(n), ai.MovesMade.Has(n):
		default:
			undetermined.Add(n)
		}
	}

	if len(undetermined) > 0 {
		ai.Knowledge = append(ai.Knowledge, &Sentence{Cells: undetermined, Count: count})
	}

	for changed := true; changed; {
		changed = ai.markConclusions()
		ai.compact()
		if ai.inferSubsets() {
			changed = true
		}
	}
}

// markConclusions marks every cell that a sentence proves safe or a mine.
func (ai *AI) markConclusions() bool {
	changed := false
	for _, s := range slices.Clone(ai.Knowledge) {
		for _, c := range s.KnownSafes().Sorted() {
			if !ai.Safes.Has(c) {
				ai.MarkSafe(c)
				changed = true
			}
		}
		for _, c := range s.KnownMines().Sorted() {
			if !ai.Mines.Has(c) {
				ai.MarkMine(c)
				changed = true
			}
		}
	}
	return changed
}

// compact drops empty and duplicate sentences.
func (ai *AI) compact() {
	kept := ai.Knowledge[:0]
	for _, s := range ai.Knowledge {
		if len(s.Cells) == 0 {
			continue
		}
		if slices.ContainsFunc(kept, s.Equal) {
			continue
		}
		kept = append(kept, s)
	}
	clear(ai.Knowledge[len(kept):])
	ai.Knowledge = kept
}

// inferSubsets adds s2 - s1 = count2 - count1 whenever s1 is a proper subset of s2.
func (ai *AI) inferSubsets() bool {
	var inferred []*Sentence
	for _, s1 := range ai.Knowledge {
		for _, s2 := range ai.Knowledge {
			if s1 == s2 || len(s1.Cells) >= len(s2.Cells) || !s1.Cells.SubsetOf(s2.Cells) {
				continue
			}

			candidate := &Sentence{
				Cells: s2.Cells.Difference(s1.Cells),
				Count: s2.Count - s1.Count,
			}
			if slices.ContainsFunc(ai.Knowledge, candidate.Equal) || slices.ContainsFunc(inferred, candidate.Equal) {
				continue
			}
			inferred = append(inferred, candidate)
		}
	}

	ai.Knowledge = append(ai.Knowledge, inferred...)
	return len(inferred) > 0
}

// MakeSafeMove returns a cell known to be safe that has not been played yet.
// With a nil rng the first such cell in row-major order is returned.
func (ai *AI) MakeSafeMove(rng *rand.Rand) (Cell, bool) {
	candidates := ai.Safes.Difference(ai.MovesMade).Sorted()
	return pick(candidates, rng)
}

// MakeRandomMove returns a cell that has not been played and is not a known mine.
func (ai *AI) MakeRandomMove(rng *rand.Rand) (Cell, bool) {
	var candidates []Cell
	for i := range ai.Height {
		for j := range ai.Width {
			c := Cell{I: i, J: j}
			if !ai.MovesMade.Has(c) && !ai.Mines.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}
	return pick(candidates, rng)
}

func pick(cells []Cell, rng *rand.Rand) (Cell, bool) {
	if len(cells) == 0 {
		return Cell{}, false
	}
	if rng == nil {
		return cells[0], true
	}
	return cells[rng.IntN(len(cells))], true
}
