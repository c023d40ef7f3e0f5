package tictactoe

import "math"

// Minimax returns the optimal action for the player to move.
// ok is false when the board is terminal.
// X maximises the utility and O minimises it. Among equally good actions
// the first one in row-major order is chosen.
func Minimax(b Board) (best Action, ok bool) {
	if b.Terminal() {
		return Action{}, false
	}

	alpha, beta := math.MinInt, math.MaxInt
	maximizing := b.Player() == X

	bestValue := math.MaxInt
	if maximizing {
		bestValue = math.MinInt
	}

	for _, a := range b.Actions() {
		next, _ := b.Result(a)
		value := search(next, alpha, beta)

		if maximizing && value > bestValue {
			best, bestValue = a, value
			alpha = max(alpha, value)
		}
		if !maximizing && value < bestValue {
			best, bestValue = a, value
			beta = min(beta, value)
		}
	}

	return best, true
}

// search is the alpha-beta value of b.
func search(b Board, alpha, beta int) int {
	if b.Terminal() {
		return b.Utility()
	}

	if b.Player() == X {
		v := math.MinInt
		for _, a := range b.Actions() {
			next, _ := b.Result(a)
			v = max(v, search(next, alpha, beta))
			if v >= beta {
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	v := math.MaxInt
	for _, a := range b.Actions() {
		next, _ := b.Result(a)
		v = min(v, search(next, alpha, beta))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}

// Value returns the game-theoretic value of b under optimal play.
func Value(b Board) int {
	return search(b, math.MinInt, math.MaxInt)
}
