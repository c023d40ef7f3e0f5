// Command tictactoe plays tic-tac-toe against an optimal opponent in the terminal.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ferdiebergado/thinkbox/internal/pkg/logging"
	"github.com/ferdiebergado/thinkbox/internal/tictactoe"
)

var errNoInput = errors.New("input closed before the game ended")

func main() {
	logging.SetupLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"), os.Stderr)

	player := flag.String("player", "X", "the mark you play, X or O")
	flag.Parse()

	human := tictactoe.Cell(strings.ToUpper(*player))
	if human != tictactoe.X && human != tictactoe.O {
		slog.Error("Invalid player.", "player", *player)
		os.Exit(2)
	}

	if err := play(os.Stdin, os.Stdout, human); err != nil {
		slog.Error("tictactoe failed.", "reason", err)
		os.Exit(1)
	}
}

func play(in io.Reader, out io.Writer, human tictactoe.Cell) error {
	scanner := bufio.NewScanner(in)
	board := tictactoe.InitialState()

	for !board.Terminal() {
		fmt.Fprintln(out, board)

		if board.Player() != human {
			action, _ := tictactoe.Minimax(board)
			fmt.Fprintf(out, "Computer plays %v\n", action)
			next, err := board.Result(action)
			if err != nil {
				return err
			}
			board = next
			continue
		}

		fmt.Fprint(out, "Your move (row col): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read move: %w", err)
			}
			return errNoInput
		}

		var a tictactoe.Action
		if _, err := fmt.Sscan(scanner.Text(), &a.I, &a.J); err != nil {
			fmt.Fprintln(out, "Enter a row and a column between 0 and 2.")
			continue
		}

		next, err := board.Result(a)
		if err != nil {
			fmt.Fprintf(out, "Cannot play %v.\n", a)
			continue
		}
		board = next
	}

	fmt.Fprintln(out, board)
	if winner := board.Winner(); winner != tictactoe.Empty {
		fmt.Fprintf(out, "Game over: %s wins.\n", winner)
	} else {
		fmt.Fprintln(out, "Game over: tie.")
	}
	return nil
}
