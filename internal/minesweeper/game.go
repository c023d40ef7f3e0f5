// Package minesweeper implements a Minesweeper board and a player that
// reasons about it with a propositional knowledge base.
package minesweeper

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	ErrTooManyMines = errors.New("minesweeper: too many mines for the board")
	ErrInvalidSize  = errors.New("minesweeper: invalid board size")
	ErrOutOfBounds  = errors.New("minesweeper: cell is outside the board")
)

// Game is the hidden state of a board: where the mines are.
type Game struct {
	Height     int     `json:"height"`
	Width      int     `json:"width"`
	Mines      CellSet `json:"mines"`
	MinesFound CellSet `json:"mines_found"`
}

// NewGame places mines at distinct random cells.
func NewGame(height, width, mines int, rng *rand.Rand) (*Game, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, height, width)
	}

	if mines < 0 || mines > height*width {
		return nil, fmt.Errorf("%w: %d mines on %d cells", ErrTooManyMines, mines, height*width)
	}

	g := &Game{
		Height:     height,
		Width:      width,
		Mines:      make(CellSet, mines),
		MinesFound: make(CellSet),
	}

	for len(g.Mines) < mines {
		g.Mines.Add(Cell{I: rng.IntN(height), J: rng.IntN(width)})
	}

	return g, nil
}

// Contains reports whether c lies on the board.
func (g *Game) Contains(c Cell) bool {
	return c.I >= 0 && c.I < g.Height && c.J >= 0 && c.J < g.Width
}

func (g *Game) IsMine(c Cell) bool {
	return g.Mines.Has(c)
}

// NearbyMines counts the mines within one row and column of c, c excluded.
func (g *Game) NearbyMines(c Cell) int {
	count := 0
	for _, n := range neighbors(c, g.Height, g.Width) {
		if g.Mines.Has(n) {
			count++
		}
	}
	return count
}

// Won reports whether every mine has been flagged and nothing else.
func (g *Game) Won() bool {
	return g.MinesFound.Equal(g.Mines)
}

// String draws where the mines are.
func (g *Game) String() string {
	var sb strings.Builder
	border := strings.Repeat("--", g.Width) + "-\n"
	for i := range g.Height {
		sb.WriteString(border)
		for j := range g.Width {
			if g.Mines.Has(Cell{I: i, J: j}) {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
