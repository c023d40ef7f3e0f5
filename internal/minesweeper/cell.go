package minesweeper

import (
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

func compareCells(a, b Cell) int {
	if n := cmp.Compare(a.I, b.I); n != 0 {
		return n
	}
	return cmp.Compare(a.J, b.J)
}

// neighbors returns the in-bounds cells around c, c excluded.
func neighbors(c Cell, height, width int) []Cell {
	cells := make([]Cell, 0, 8)
	for i := c.I - 1; i <= c.I+1; i++ {
		for j := c.J - 1; j <= c.J+1; j++ {
			if (i == c.I && j == c.J) || i < 0 || i >= height || j < 0 || j >= width {
				continue
			}
			cells = append(cells, Cell{I: i, J: j})
		}
	}
	return cells
}

// CellSet is an unordered set of cells. It encodes to JSON as a sorted array.
type CellSet map[Cell]struct{}

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Clone() CellSet {
	if s == nil {
		return make(CellSet)
	}
	return maps.Clone(s)
}

func (s CellSet) Equal(o CellSet) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// SubsetOf reports whether every cell of s is in o.
func (s CellSet) SubsetOf(o CellSet) bool {
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Difference returns the cells of s that are not in o.
func (s CellSet) Difference(o CellSet) CellSet {
	d := make(CellSet)
	for c := range s {
		if !o.Has(c) {
			d.Add(c)
		}
	}
	return d
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	return slices.SortedFunc(maps.Keys(s), compareCells)
}

func (s CellSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *CellSet) UnmarshalJSON(b []byte) error {
	var cells []Cell
	if err := json.Unmarshal(b, &cells); err != nil {
		return fmt.Errorf("decode cell set: %w", err)
	}
	*s = NewCellSet(cells...)
	return nil
}
