// Package crossword fills a crossword structure with words from a vocabulary
// by treating every across and down slot as a variable of a constraint
// satisfaction problem.
package crossword

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidStructure = errors.New("crossword: invalid structure")
	ErrInvalidWords     = errors.New("crossword: invalid word list")
	ErrNoSolution       = errors.New("crossword: no solution")
)

// OpenCell marks a cell that takes a letter in a structure file.
const OpenCell = '_'

type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Variable is a slot of Length open cells starting at (I, J).
type Variable struct {
	I         int       `json:"i"`
	J         int       `json:"j"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.I, v.J, v.Direction, v.Length)
}

// Cells lists the cells of v in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := range cells {
		switch v.Direction {
		case Down:
			cells[k] = Cell{I: v.I + k, J: v.J}
		default:
			cells[k] = Cell{I: v.I, J: v.J + k}
		}
	}
	return cells
}

// Arc is an ordered pair of overlapping variables.
type Arc struct {
	X, Y Variable
}

// Overlap holds the letter positions where two variables share a cell:
// X in the first variable and Y in the second.
type Overlap struct {
	X, Y int
}

type Crossword struct {
	Height    int
	Width     int
	Structure [][]bool
	Words     []string
	Variables []Variable

	overlaps  map[Arc]Overlap
	neighbors map[Variable][]Variable
}

// ParseStructure reads a structure file. Every line is a row.
func ParseStructure(r io.Reader) ([][]bool, error) {
	rows, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	return StructureFromRows(rows)
}

// StructureFromRows turns rows of text into a grid of open cells, one cell
// per character. OpenCell is open and anything else is blocked. Short rows
// are padded with blocked cells to the widest row.
func StructureFromRows(rows []string) ([][]bool, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	cells := make([][]rune, len(rows))
	width := 0
	for i, row := range rows {
		cells[i] = []rune(row)
		width = max(width, len(cells[i]))
	}
	if len(rows) == 0 || width == 0 {
		return nil, fmt.Errorf("%w: structure is empty", ErrInvalidStructure)
	}

	structure := make([][]bool, len(cells))
	for i, row := range cells {
		structure[i] = make([]bool, width)
		for j, r := range row {
			structure[i][j] = r == OpenCell
		}
	}
	return structure, nil
}

// ParseWords reads a word list with one word per line.
func ParseWords(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return NormalizeWords(lines)
}

// NormalizeWords upper-cases, de-duplicates and sorts words. Blank entries
// are skipped, and so are words with spaces or unprintable characters since
// no cell can hold them. It fails only when words had entries but none fit.
func NormalizeWords(words []string) ([]string, error) {
	normalized := make([]string, 0, len(words))
	skipped := 0
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !utf8.ValidString(w) || strings.IndexFunc(w, unfit) >= 0 {
			slog.Debug("Skipping word.", "word", w)
			skipped++
			continue
		}
		normalized = append(normalized, w)
	}

	if len(normalized) == 0 && skipped > 0 {
		return nil, fmt.Errorf("%w: none of %d words can be placed", ErrInvalidWords, skipped)
	}

	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}

func unfit(r rune) bool {
	return unicode.IsSpace(r) || !unicode.IsGraphic(r)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// New finds the variables of structure and how they overlap.
func New(structure [][]bool, words []string) (*Crossword, error) {
	if len(structure) == 0 || len(structure[0]) == 0 {
		return nil, fmt.Errorf("%w: structure is empty", ErrInvalidStructure)
	}

	c := &Crossword{
		Height:    len(structure),
		Width:     len(structure[0]),
		Structure: structure,
		Words:     words,
		overlaps:  make(map[Arc]Overlap),
		neighbors: make(map[Variable][]Variable),
	}

	for i, row := range structure {
		if len(row) != c.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidStructure, i, len(row), c.Width)
		}
	}

	c.findVariables()
	c.findOverlaps()
	return c, nil
}

func (c *Crossword) open(i, j int) bool {
	return i >= 0 && i < c.Height && j >= 0 && j < c.Width && c.Structure[i][j]
}

func (c *Crossword) findVariables() {
	for i := range c.Height {
		for j := range c.Width {
			if !c.open(i, j) {
				continue
			}

			if !c.open(i-1, j) {
				length := 1
				for c.open(i+length, j) {
					length++
				}
				if length > 1 {
					c.Variables = append(c.Variables, Variable{I: i, J: j, Direction: Down, Length: length})
				}
			}

			if !c.open(i, j-1) {
				length := 1
				for c.open(i, j+length) {
					length++
				}
				if length > 1 {
					c.Variables = append(c.Variables, Variable{I: i, J: j, Direction: Across, Length: length})
				}
			}
		}
	}
}

func (c *Crossword) findOverlaps() {
	positions := make(map[Variable]map[Cell]int, len(c.Variables))
	for _, v := range c.Variables {
		pos := make(map[Cell]int, v.Length)
		for k, cell := range v.Cells() {
			pos[cell] = k
		}
		positions[v] = pos
	}

	for _, x := range c.Variables {
		for _, y := range c.Variables {
			if x == y {
				continue
			}
			for cell, kx := range positions[x] {
				if ky, ok := positions[y][cell]; ok {
					c.overlaps[Arc{X: x, Y: y}] = Overlap{X: kx, Y: ky}
					c.neighbors[x] = append(c.neighbors[x], y)
					break
				}
			}
		}
	}
}

// Overlap reports where x and y share a cell, if they do.
func (c *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	o, ok := c.overlaps[Arc{X: x, Y: y}]
	return o, ok
}

// Neighbors returns the variables that overlap v, in variable order.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}

// Arcs returns every ordered pair of overlapping variables.
func (c *Crossword) Arcs() []Arc {
	var arcs []Arc
	for _, x := range c.Variables {
		for _, y := range c.neighbors[x] {
			arcs = append(arcs, Arc{X: x, Y: y})
		}
	}
	return arcs
}
