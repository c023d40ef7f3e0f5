package minesweeper_test

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/minesweeper"
	"github.com/google/go-cmp/cmp"
)

func TestNewGame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		height, width, mines int
		wantErr              error
	}{
		{"classic board", 8, 8, 8, nil},
		{"every cell a mine", 2, 2, 4, nil},
		{"no mines", 3, 3, 0, nil},
		{"too many mines", 2, 2, 5, minesweeper.ErrTooManyMines},
		{"negative mines", 2, 2, -1, minesweeper.ErrTooManyMines},
		{"empty board", 0, 3, 0, minesweeper.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(1, 2))
			g, err := minesweeper.NewGame(tt.height, tt.width, tt.mines, rng)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewGame() = %v, want: %v", err, tt.wantErr)
			}

			if err != nil {
				return
			}

			if got := len(g.Mines); got != tt.mines {
				t.Errorf("len(g.Mines) = %d, want: %d", got, tt.mines)
			}

			for m := range g.Mines {
				if !g.Contains(m) {
					t.Errorf("mine %v is off the board", m)
				}
			}
		})
	}
}

func TestGame_NearbyMines(t *testing.T) {
	t.Parallel()

	g := &minesweeper.Game{
		Height: 3,
		Width:  3,
		Mines:  minesweeper.NewCellSet(minesweeper.Cell{I: 0, J: 0}, minesweeper.Cell{I: 2, J: 2}),
	}

	tests := []struct {
		cell minesweeper.Cell
		want int
	}{
		{minesweeper.Cell{I: 1, J: 1}, 2},
		{minesweeper.Cell{I: 0, J: 1}, 1},
		{minesweeper.Cell{I: 0, J: 0}, 0},
		{minesweeper.Cell{I: 2, J: 0}, 0},
	}

	for _, tt := range tests {
		if got := g.NearbyMines(tt.cell); got != tt.want {
			t.Errorf("g.NearbyMines(%v) = %d, want: %d", tt.cell, got, tt.want)
		}
	}
}

func TestGame_Won(t *testing.T) {
	t.Parallel()

	mine := minesweeper.Cell{I: 1, J: 1}
	g := &minesweeper.Game{
		Height:     2,
		Width:      2,
		Mines:      minesweeper.NewCellSet(mine),
		MinesFound: minesweeper.NewCellSet(),
	}

	if g.Won() {
		t.Fatal("g.Won() = true with no mines found")
	}

	g.MinesFound.Add(mine)
	if !g.Won() {
		t.Fatal("g.Won() = false with every mine found")
	}

	g.MinesFound.Add(minesweeper.Cell{I: 0, J: 0})
	if g.Won() {
		t.Error("g.Won() = true with a wrong flag")
	}
}

func TestCellSet_JSON(t *testing.T) {
	t.Parallel()

	s := minesweeper.NewCellSet(minesweeper.Cell{I: 1, J: 0}, minesweeper.Cell{I: 0, J: 2})

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(b), `[{"i":0,"j":2},{"i":1,"j":0}]`; got != want {
		t.Errorf("json.Marshal(s) = %s, want: %s", got, want)
	}

	var decoded minesweeper.CellSet
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(s, decoded); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}
