// path: internal/game/types.go
package game

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceRank is the promotion axis, independent of Color.
type PieceRank uint8

const (
	Man PieceRank = iota
	King
)

func (r PieceRank) String() string {
	if r == King {
		return "king"
	}
	return "man"
}

// Piece is an occupied cell. Empty cells are represented by the
// occupancy flag on the board, so a piece always has a real color.
type Piece struct {
	Color Color
	Rank  PieceRank
}

func (p Piece) String() string {
	sym := "b"
	if p.Color == White {
		sym = "w"
	}
	if p.Rank == King {
		sym = strings.ToUpper(sym)
	}
	return sym
}

// Square indexes the board as row*8+col, row 0 at Black's edge.
type Square int

func (s Square) Row() int { return int(s) / 8 }

func (s Square) Col() int { return int(s) % 8 }

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row(), s.Col())
}

func SquareFromCoords(row, col int) (Square, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0, false
	}
	return Square(row*8 + col), true
}

// Move is a start square plus an ordered, non-empty landing sequence.
// A single one-square diagonal step is a simple move; otherwise every
// step is a two-square jump and Captures lists the jumped midpoints.
type Move struct {
	From     Square
	Path     []Square
	Captures []Square
}

func (m Move) IsCapture() bool { return len(m.Captures) > 0 }

func (m Move) Equal(other Move) bool {
	if m.From != other.From || len(m.Path) != len(other.Path) {
		return false
	}
	for i, sq := range m.Path {
		if other.Path[i] != sq {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	parts := make([]string, 0, len(m.Path)+1)
	parts = append(parts, m.From.String())
	for _, sq := range m.Path {
		parts = append(parts, sq.String())
	}
	return strings.Join(parts, "->")
}

type moveDelta struct {
	dr int
	dc int
}

var (
	blackForward = [...]moveDelta{{dr: 1, dc: -1}, {dr: 1, dc: 1}}
	whiteForward = [...]moveDelta{{dr: -1, dc: -1}, {dr: -1, dc: 1}}
)

// directionsFor returns the diagonal directions a piece may step or
// jump toward. Men move only toward the opponent's edge; kings both ways.
func directionsFor(p Piece) []moveDelta {
	if p.Rank == King {
		dirs := make([]moveDelta, 0, 4)
		dirs = append(dirs, blackForward[:]...)
		dirs = append(dirs, whiteForward[:]...)
		return dirs
	}
	if p.Color == Black {
		return blackForward[:]
	}
	return whiteForward[:]
}

// promotionRow is the farthest row for a color; a man ending a move
// there becomes a king.
func promotionRow(c Color) int {
	if c == Black {
		return 7
	}
	return 0
}
