package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOverlappingDiscs = errors.New("black and white discs overlap")

// GameState is an immutable board position with the side to move. It is a
// comparable value and can be used as a map key; MakeMove returns a copy.
type GameState struct {
	turn  Player
	black Bitboard
	white Bitboard
}

// ReversiInitial is the empty board, Black to move.
func ReversiInitial() GameState {
	return GameState{turn: Black}
}

// OthelloInitial is the standard four disc start, Black to move.
func OthelloInitial() GameState {
	return GameState{turn: Black, black: OthelloBlackStart, white: OthelloWhiteStart}
}

// FromBitboards builds a state from raw occupancy. If turn has no legal move
// the turn is corrected the same way MakeMove does it.
func FromBitboards(black, white Bitboard, turn Player) (GameState, error) {
	if black&white != Empty {
		return GameState{}, fmt.Errorf("cannot build state: %w", ErrOverlappingDiscs)
	}
	if turn != Black && turn != White {
		return GameState{}, fmt.Errorf("cannot build state: invalid turn %d", turn)
	}
	gs := GameState{turn: turn, black: black, white: white}
	gs.passIfRequired()
	return gs, nil
}

func (gs GameState) Turn() Player {
	return gs.turn
}

func (gs GameState) Black() Bitboard {
	return gs.black
}

func (gs GameState) White() Bitboard {
	return gs.white
}

// BitboardOf returns the discs owned by player.
func (gs GameState) BitboardOf(player Player) Bitboard {
	if player == Black {
		return gs.black
	}
	return gs.white
}

func (gs GameState) CountOf(player Player) int {
	return gs.BitboardOf(player).Count()
}

func (gs GameState) Occupied() Bitboard {
	return gs.black | gs.white
}

// At returns the owner of the disc on p, or false if p is empty.
func (gs GameState) At(p Position) (Player, bool) {
	switch {
	case gs.black.Has(p):
		return Black, true
	case gs.white.Has(p):
		return White, true
	default:
		return 0, false
	}
}

// MoveBitboard returns the legal destinations of the side to move.
func (gs GameState) MoveBitboard() Bitboard {
	return ValidMoves(gs.BitboardOf(gs.turn), gs.BitboardOf(gs.turn.Opponent()))
}

// Moves lists the legal moves in ascending square order.
func (gs GameState) Moves() []Position {
	return gs.MoveBitboard().Positions()
}

func (gs GameState) IsLegal(p Position) bool {
	return p.Valid() && gs.MoveBitboard().Has(p)
}

// MakeMove plays position for the side to move and returns the successor,
// passing the turn back when the opponent is blocked. It panics if position
// is not one of Moves().
func (gs GameState) MakeMove(position Position) GameState {
	next := gs
	switch gs.turn {
	case Black:
		next.black, next.white = Apply(position, gs.black, gs.white)
	case White:
		next.white, next.black = Apply(position, gs.white, gs.black)
	}

	next.turn = next.turn.Opponent()
	next.passIfRequired()
	return next
}

func (gs *GameState) passIfRequired() {
	if gs.MoveBitboard() != Empty {
		return
	}
	// forced pass
	gs.turn = gs.turn.Opponent()
	if gs.MoveBitboard() != Empty {
		return
	}
	// neither side can move: the game is over
	gs.turn = Black
}

// Outcome reports the result once the side to move has no legal move. After
// pass correction that only happens when neither side can move.
func (gs GameState) Outcome() (Outcome, bool) {
	if gs.MoveBitboard() != Empty {
		return 0, false
	}

	black, white := gs.CountOf(Black), gs.CountOf(White)
	switch {
	case black > white:
		return BlackWins, true
	case white > black:
		return WhiteWins, true
	default:
		return Draw, true
	}
}

// ScoreOf is the displayed score. A winner is credited with the empty
// squares and a draw is shown as an even split.
func (gs GameState) ScoreOf(player Player) int {
	outcome, over := gs.Outcome()
	if !over {
		return gs.CountOf(player)
	}
	winner, ok := outcome.Winner()
	switch {
	case !ok:
		return BoardSquares / 2
	case winner == player:
		return BoardSquares - gs.CountOf(player.Opponent())
	default:
		return gs.CountOf(player)
	}
}

func (gs GameState) String() string {
	var sb strings.Builder
	moves := gs.MoveBitboard()

	sb.WriteString("  ")
	for col := 0; col < BoardSide; col++ {
		sb.WriteByte(colNotation[col])
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := 0; row < BoardSide; row++ {
		sb.WriteByte(rowNotation[row])
		sb.WriteByte(' ')
		for col := 0; col < BoardSide; col++ {
			p := Position(row*BoardSide + col)
			switch owner, ok := gs.At(p); {
			case ok && owner == Black:
				sb.WriteByte('X')
			case ok:
				sb.WriteByte('O')
			case moves.Has(p):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	winner := "-"
	if outcome, over := gs.Outcome(); over {
		winner = outcome.String()
	}
	fmt.Fprintf(&sb, "Turn: %s | Score: %d-%d | Winner: %s\n",
		gs.turn, gs.ScoreOf(Black), gs.ScoreOf(White), winner)
	return sb.String()
}
