// path: internal/game/engine.go
// Package game implements the English draughts rules engine: board
// state, legal-move enumeration with mandatory capture chains, and
// move application.
package game

import "fmt"

// Engine owns a single game. It is not safe for concurrent use; run one
// Engine per game and independent games are free to run in parallel.
type Engine struct {
	board      Board
	history    []Move
	legal      []Move
	legalValid bool
}

// BoardState is a serializable representation of the game state.
type BoardState struct {
	Grid        []string `json:"grid"`
	Turn        string   `json:"turn"`
	GameOver    bool     `json:"gameOver"`
	HasWinner   bool     `json:"hasWinner"`
	Winner      string   `json:"winner,omitempty"`
	Plies       int      `json:"plies"`
	BlackPieces int      `json:"blackPieces"`
	WhitePieces int      `json:"whitePieces"`
}

// NewEngine creates an engine holding the standard opening position.
func NewEngine() *Engine {
	eng := &Engine{}
	eng.Reset()
	return eng
}

// Reset restores the standard opening position and clears the history.
func (e *Engine) Reset() {
	e.board = NewBoard()
	e.history = e.history[:0]
	e.invalidate()
}

func (e *Engine) invalidate() {
	e.legal = nil
	e.legalValid = false
}

func (e *Engine) legalMoves() []Move {
	if !e.legalValid {
		e.legal = e.board.LegalMoves()
		e.legalValid = true
	}
	return e.legal
}

// LegalMoves returns every legal move for the side to move. Captures
// are mandatory; see Board.LegalMoves. The returned slice is the
// caller's to keep.
func (e *Engine) LegalMoves() []Move {
	return append([]Move(nil), e.legalMoves()...)
}

// Move validates m against the current legal-move set and applies it.
// An illegal move is rejected with ErrIllegalMove before any board
// mutation, so a failed call leaves the position untouched.
func (e *Engine) Move(m Move) error {
	if len(m.Path) == 0 {
		return ErrEmptyMove
	}
	legal := false
	for _, cand := range e.legalMoves() {
		if cand.Equal(m) {
			m = cand
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, e.board.turn)
	}

	e.board.apply(m)
	e.history = append(e.history, m)
	e.invalidate()
	return nil
}

// Turn returns the side to move.
func (e *Engine) Turn() Color { return e.board.turn }

// GameOver reports whether the side to move has no legal move.
func (e *Engine) GameOver() bool { return len(e.legalMoves()) == 0 }

// Winner returns the winning side once the game is over: the player to
// move has no legal move and loses. While the game is live it returns
// ok=false rather than an error.
func (e *Engine) Winner() (Color, bool) {
	if !e.GameOver() {
		return 0, false
	}
	return e.board.turn.Opposite(), true
}

// Snapshot returns an independent copy of the position. Board is a
// value type, so mutating the copy never touches engine state.
func (e *Engine) Snapshot() Board { return e.board }

// History returns the applied moves in order.
func (e *Engine) History() []Move {
	return append([]Move(nil), e.history...)
}

// State returns a serializable representation of the current game state.
func (e *Engine) State() BoardState {
	state := BoardState{
		Grid:        make([]string, 0, 8),
		Turn:        e.board.turn.String(),
		GameOver:    e.GameOver(),
		Plies:       len(e.history),
		BlackPieces: e.board.CountPieces(Black),
		WhitePieces: e.board.CountPieces(White),
	}
	for row := 0; row < 8; row++ {
		line := make([]byte, 8)
		for col := 0; col < 8; col++ {
			line[col] = '.'
			if sq, ok := SquareFromCoords(row, col); ok {
				if p, occupied := e.board.PieceAt(sq); occupied {
					line[col] = p.String()[0]
				}
			}
		}
		state.Grid = append(state.Grid, string(line))
	}
	if winner, ok := e.Winner(); ok {
		state.HasWinner = true
		state.Winner = winner.String()
	}
	return state
}

// String renders the current position; see Board.String.
func (e *Engine) String() string { return e.board.String() }
