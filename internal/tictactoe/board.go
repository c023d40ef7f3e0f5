// Package tictactoe implements the rules of tic-tac-toe and an optimal player.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of a board.
const Size = 3

var (
	ErrInvalidMove  = errors.New("tictactoe: invalid move")
	ErrInvalidBoard = errors.New("tictactoe: invalid board")
)

// Cell is the content of a single square.
type Cell string

const (
	Empty Cell = ""
	X     Cell = "X"
	O     Cell = "O"
)

// Action is a (row, column) pair.
type Action struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.I, a.J)
}

// Board is a value type; every move produces a new board.
type Board [Size][Size]Cell

// InitialState returns the starting board.
func InitialState() Board {
	return Board{}
}

func (b Board) count(c Cell) int {
	n := 0
	for i := range Size {
		for j := range Size {
			if b[i][j] == c {
				n++
			}
		}
	}
	return n
}

// Player returns the player who has the next turn.
func (b Board) Player() Cell {
	if b.count(X) == b.count(O) {
		return X
	}
	return O
}

// Actions returns the empty cells in row-major order.
func (b Board) Actions() []Action {
	actions := make([]Action, 0, Size*Size)
	for i := range Size {
		for j := range Size {
			if b[i][j] == Empty {
				actions = append(actions, Action{I: i, J: j})
			}
		}
	}
	return actions
}

// Result returns the board after the player to move plays a.
func (b Board) Result(a Action) (Board, error) {
	if a.I < 0 || a.I >= Size || a.J < 0 || a.J >= Size {
		return b, fmt.Errorf("%w: %v is off the board", ErrInvalidMove, a)
	}

	if b[a.I][a.J] != Empty {
		return b, fmt.Errorf("%w: %v is taken", ErrInvalidMove, a)
	}

	next := b
	next[a.I][a.J] = b.Player()
	return next, nil
}

// Winner returns the mark that completed a line, or Empty.
func (b Board) Winner() Cell {
	for _, line := range lines {
		first := b[line[0].I][line[0].J]
		if first == Empty {
			continue
		}
		if b[line[1].I][line[1].J] == first && b[line[2].I][line[2].J] == first {
			return first
		}
	}
	return Empty
}

var lines = [...][Size]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Terminal reports whether the game is over.
func (b Board) Terminal() bool {
	return b.Winner() != Empty || b.count(Empty) == 0
}

// Utility returns 1 if X has won, -1 if O has won and 0 otherwise.
func (b Board) Utility() int {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// Validate checks that the board could have been reached by legal play.
func (b Board) Validate() error {
	for i := range Size {
		for j := range Size {
			switch b[i][j] {
			case Empty, X, O:
			default:
				return fmt.Errorf("%w: unknown mark %q at (%d, %d)", ErrInvalidBoard, b[i][j], i, j)
			}
		}
	}

	diff := b.count(X) - b.count(O)
	if diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X against %d O", ErrInvalidBoard, b.count(X), b.count(O))
	}

	// Play stops at the first completed line, so the winner made the last move.
	xWon, oWon := b.hasLine(X), b.hasLine(O)
	switch {
	case xWon && oWon:
		return fmt.Errorf("%w: both X and O have a line", ErrInvalidBoard)
	case xWon && diff != 1:
		return fmt.Errorf("%w: O moved after X won", ErrInvalidBoard)
	case oWon && diff != 0:
		return fmt.Errorf("%w: X moved after O won", ErrInvalidBoard)
	}

	return nil
}

func (b Board) hasLine(c Cell) bool {
	for _, line := range lines {
		if b[line[0].I][line[0].J] == c && b[line[1].I][line[1].J] == c && b[line[2].I][line[2].J] == c {
			return true
		}
	}
	return false
}

// String draws the board with dots for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for i := range Size {
		for j := range Size {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if b[i][j] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(b[i][j]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromRows builds a board from its JSON row representation.
func FromRows(rows [][]string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(row))
		}
		for j, c := range row {
			b[i][j] = Cell(strings.ToUpper(strings.TrimSpace(c)))
		}
	}

	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

// Rows is the inverse of FromRows.
func (b Board) Rows() [][]string {
	rows := make([][]string, Size)
	for i := range Size {
		rows[i] = make([]string, Size)
		for j := range Size {
			rows[i][j] = string(b[i][j])
		}
	}
	return rows
}
