package minesweeper

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

var (
	ErrGameOver        = errors.New("minesweeper: game is over")
	ErrAlreadyRevealed = errors.New("minesweeper: cell already revealed")
	ErrNoMoves         = errors.New("minesweeper: no moves left")
)

type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Reveal is one uncovered cell and its neighbouring mine count.
type Reveal struct {
	Cell  Cell `json:"cell"`
	Count int  `json:"count"`
}

// Session is a game in progress together with the AI that watches it.
type Session struct {
	ID        string    `json:"-"`
	OwnerID   string    `json:"-"`
	Status    Status    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Game     *Game    `json:"game"`
	AI       *AI      `json:"ai"`
	Revealed []Reveal `json:"revealed"`
	Flags    CellSet  `json:"flags"`
	Exploded *Cell    `json:"exploded,omitempty"`
}

// NewSession starts a game with mines placed by rng.
func NewSession(height, width, mines int, rng *rand.Rand) (*Session, error) {
	if mines >= height*width {
		return nil, fmt.Errorf("%w: %d mines leave no safe cell on %d cells", ErrTooManyMines, mines, height*width)
	}

	g, err := NewGame(height, width, mines, rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		Status: StatusPlaying,
		Game:   g,
		AI:     NewAI(height, width),
		Flags:  make(CellSet),
	}, nil
}

func (s *Session) isRevealed(c Cell) bool {
	return s.AI.MovesMade.Has(c)
}

func (s *Session) checkMove(c Cell) error {
	if s.Status != StatusPlaying {
		return fmt.Errorf("%w: %s", ErrGameOver, s.Status)
	}

	if !s.Game.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return nil
}

// Reveal uncovers c. Uncovering a mine loses the game; otherwise the count
// is passed on to the AI.
func (s *Session) Reveal(c Cell) error {
	if err := s.checkMove(c); err != nil {
		return err
	}

	if s.isRevealed(c) {
		return fmt.Errorf("%w: %v", ErrAlreadyRevealed, c)
	}

	if s.Game.IsMine(c) {
		s.Status = StatusLost
		s.Exploded = &c
		return nil
	}

	count := s.Game.NearbyMines(c)
	s.Revealed = append(s.Revealed, Reveal{Cell: c, Count: count})
	s.Flags.Remove(c)
	s.AI.AddKnowledge(c, count)
	s.updateStatus()
	return nil
}

// ToggleFlag marks or unmarks c as a suspected mine.
func (s *Session) ToggleFlag(c Cell) error {
	if err := s.checkMove(c); err != nil {
		return err
	}

	if s.isRevealed(c) {
		return fmt.Errorf("%w: %v", ErrAlreadyRevealed, c)
	}

	if s.Flags.Has(c) {
		s.Flags.Remove(c)
	} else {
		s.Flags.Add(c)
	}

	s.updateStatus()
	return nil
}

// AIMove lets the AI play: a known safe cell when there is one, otherwise a
// random cell that is not a known mine. Every mine the AI has deduced is flagged.
func (s *Session) AIMove(rng *rand.Rand) (Cell, error) {
	if s.Status != StatusPlaying {
		return Cell{}, fmt.Errorf("%w: %s", ErrGameOver, s.Status)
	}

	c, ok := s.AI.MakeSafeMove(rng)
	if !ok {
		c, ok = s.AI.MakeRandomMove(rng)
	}
	if !ok {
		return Cell{}, ErrNoMoves
	}

	if err := s.Reveal(c); err != nil {
		return c, err
	}

	if s.Status == StatusPlaying {
		for m := range s.AI.Mines {
			s.Flags.Add(m)
		}
		s.updateStatus()
	}

	return c, nil
}

func (s *Session) updateStatus() {
	s.Game.MinesFound = s.Flags.Clone()

	safeCells := s.Game.Height*s.Game.Width - len(s.Game.Mines)
	if s.Game.Won() || len(s.Revealed) == safeCells {
		s.Status = StatusWon
	}
}

// Board renders what the player may see. Mines are shown only once the game is over.
//
// "" hidden, "F" flagged, "0".."8" revealed count, "*" mine, "X" the exploded mine.
func (s *Session) Board() [][]string {
	rows := make([][]string, s.Game.Height)
	for i := range rows {
		rows[i] = make([]string, s.Game.Width)
	}

	for c := range s.Flags {
		rows[c.I][c.J] = "F"
	}

	if s.Status != StatusPlaying {
		for c := range s.Game.Mines {
			rows[c.I][c.J] = "*"
		}
	}

	for _, r := range s.Revealed {
		rows[r.Cell.I][r.Cell.J] = strconv.Itoa(r.Count)
	}

	if s.Exploded != nil {
		rows[s.Exploded.I][s.Exploded.J] = "X"
	}

	return rows
}
