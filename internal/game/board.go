// path: internal/game/board.go
package game

import "strings"

type cell struct {
	occupied bool
	piece    Piece
}

// Board holds the 8x8 grid and the side to move. It is a plain value:
// assignment copies the whole position, which is what Snapshot relies on.
// Only dark squares ((row+col) odd) are ever occupied.
type Board struct {
	cells [8][8]cell
	turn  Color
}

// NewBoard sets up the standard opening position: twelve black men on
// the dark squares of rows 0-2, twelve white men on rows 5-7, Black to move.
func NewBoard() Board {
	var b Board
	b.turn = Black
	for row := 0; row < 3; row++ {
		for col := 0; col < 8; col++ {
			if sq, ok := SquareFromCoords(row, col); ok && darkSquare(row, col) {
				b.put(sq, Piece{Color: Black, Rank: Man})
			}
		}
	}
	for row := 5; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if sq, ok := SquareFromCoords(row, col); ok && darkSquare(row, col) {
				b.put(sq, Piece{Color: White, Rank: Man})
			}
		}
	}
	return b
}

func darkSquare(row, col int) bool { return (row+col)%2 == 1 }

func (b *Board) Turn() Color { return b.turn }

// PieceAt reports the piece on a square, if any.
func (b *Board) PieceAt(s Square) (Piece, bool) {
	c := b.cells[s.Row()][s.Col()]
	return c.piece, c.occupied
}

func (b *Board) put(s Square, p Piece) {
	b.cells[s.Row()][s.Col()] = cell{occupied: true, piece: p}
}

func (b *Board) clear(s Square) {
	b.cells[s.Row()][s.Col()] = cell{}
}

// ownsTurn reports whether the square holds a piece of the side to move.
func (b *Board) ownsTurn(s Square) bool {
	p, ok := b.PieceAt(s)
	return ok && p.Color == b.turn
}

// opponentAt reports whether the square holds a piece of the given
// color's opponent.
func (b *Board) opponentAt(s Square, c Color) bool {
	p, ok := b.PieceAt(s)
	return ok && p.Color != c
}

func (b *Board) emptyAt(s Square) bool {
	_, ok := b.PieceAt(s)
	return !ok
}

// Occupancy returns the squares holding pieces of the given color.
func (b *Board) Occupancy(c Color) Bitboard {
	var occ Bitboard
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cl := b.cells[row][col]
			if cl.occupied && cl.piece.Color == c {
				occ = occ.Add(Square(row*8 + col))
			}
		}
	}
	return occ
}

// CountPieces returns the number of pieces of the given color.
func (b *Board) CountPieces(c Color) int { return b.Occupancy(c).Count() }

// String renders the position as a text grid with row and column
// headers: '.' empty, 'b'/'B' black man/king, 'w'/'W' white man/king.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('0' + row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			cl := b.cells[row][col]
			if cl.occupied {
				sb.WriteString(cl.piece.String())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
