package minesweeper

import (
	"fmt"
	"strings"
)

// Sentence states that Count of the Cells are mines.
type Sentence struct {
	Cells CellSet `json:"cells"`
	Count int     `json:"count"`
}

func NewSentence(cells CellSet, count int) *Sentence {
	return &Sentence{Cells: cells.Clone(), Count: count}
}

func (s *Sentence) Equal(o *Sentence) bool {
	return s.Count == o.Count && s.Cells.Equal(o.Cells)
}

func (s *Sentence) String() string {
	parts := make([]string, 0, len(s.Cells))
	for _, c := range s.Cells.Sorted() {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, ", "), s.Count)
}

// KnownMines returns the cells that must all be mines.
func (s *Sentence) KnownMines() CellSet {
	if len(s.Cells) > 0 && len(s.Cells) == s.Count {
		return s.Cells.Clone()
	}
	return CellSet{}
}

// KnownSafes returns the cells that must all be safe.
func (s *Sentence) KnownSafes() CellSet {
	if s.Count == 0 {
		return s.Cells.Clone()
	}
	return CellSet{}
}

// MarkMine removes c from the sentence, lowering the count.
func (s *Sentence) MarkMine(c Cell) {
	if s.Cells.Has(c) {
		s.Cells.Remove(c)
		s.Count--
	}
}

// MarkSafe removes c from the sentence.
func (s *Sentence) MarkSafe(c Cell) {
	s.Cells.Remove(c)
}
