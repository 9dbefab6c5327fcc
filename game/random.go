package game

import "golang.org/x/exp/rand"

// RandomState plays plies random moves from the Othello start. Playouts that
// end before reaching plies are discarded and restarted.
func RandomState(r *rand.Rand, plies int) GameState {
	if plies < 0 || plies > BoardSquares-4 {
		panic("plies out of range")
	}
	for {
		gs, ok := randomPlayout(r, OthelloInitial(), plies)
		if ok {
			return gs
		}
	}
}

func randomPlayout(r *rand.Rand, gs GameState, plies int) (GameState, bool) {
	for i := 0; i < plies; i++ {
		moves := gs.Moves()
		if len(moves) == 0 {
			return gs, false
		}
		gs = gs.MakeMove(moves[r.Intn(len(moves))])
	}
	return gs, true
}

// RandomGame plays random moves from start until the game is over and
// returns every state visited, start included.
func RandomGame(r *rand.Rand, start GameState) []GameState {
	states := []GameState{start}
	gs := start
	for {
		moves := gs.Moves()
		if len(moves) == 0 {
			return states
		}
		gs = gs.MakeMove(moves[r.Intn(len(moves))])
		states = append(states, gs)
	}
}
