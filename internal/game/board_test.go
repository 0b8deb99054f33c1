// path: internal/game/board_test.go
package game

import (
	"strings"
	"testing"
)

func sq(t *testing.T, row, col int) Square {
	t.Helper()
	s, ok := SquareFromCoords(row, col)
	if !ok {
		t.Fatalf("coordinates (%d,%d) off board", row, col)
	}
	return s
}

// boardPosition builds an arbitrary position for tests.
func boardPosition(turn Color, pieces map[Square]Piece) Board {
	b := Board{turn: turn}
	for s, p := range pieces {
		b.put(s, p)
	}
	return b
}

// enginePosition builds an engine holding an arbitrary position.
func enginePosition(turn Color, pieces map[Square]Piece) *Engine {
	eng := NewEngine()
	eng.board = boardPosition(turn, pieces)
	eng.history = nil
	eng.invalidate()
	return eng
}

func TestNewBoardInitialLayout(t *testing.T) {
	b := NewBoard()

	if got := b.Turn(); got != Black {
		t.Fatalf("expected Black to move, got %s", got)
	}
	if got := b.CountPieces(Black); got != 12 {
		t.Fatalf("expected 12 black pieces, got %d", got)
	}
	if got := b.CountPieces(White); got != 12 {
		t.Fatalf("expected 12 white pieces, got %d", got)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			s := sq(t, row, col)
			p, occupied := b.PieceAt(s)
			if !occupied {
				continue
			}
			if !darkSquare(row, col) {
				t.Fatalf("light square %s occupied by %s", s, p)
			}
			switch {
			case row <= 2:
				if p != (Piece{Color: Black, Rank: Man}) {
					t.Fatalf("expected black man at %s, got %s %s", s, p.Color, p.Rank)
				}
			case row >= 5:
				if p != (Piece{Color: White, Rank: Man}) {
					t.Fatalf("expected white man at %s, got %s %s", s, p.Color, p.Rank)
				}
			default:
				t.Fatalf("middle square %s occupied by %s", s, p)
			}
		}
	}
}

func TestBoardRender(t *testing.T) {
	b := NewBoard()

	want := strings.Join([]string{
		"  0 1 2 3 4 5 6 7",
		"0 . b . b . b . b ",
		"1 b . b . b . b . ",
		"2 . b . b . b . b ",
		"3 . . . . . . . . ",
		"4 . . . . . . . . ",
		"5 w . w . w . w . ",
		"6 . w . w . w . w ",
		"7 w . w . w . w . ",
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Fatalf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderShowsKings(t *testing.T) {
	b := boardPosition(Black, map[Square]Piece{
		mustCoords(3, 2): {Color: Black, Rank: King},
		mustCoords(4, 5): {Color: White, Rank: King},
	})
	out := b.String()
	if !strings.Contains(out, "B") {
		t.Fatalf("expected black king symbol in render:\n%s", out)
	}
	if !strings.Contains(out, "W") {
		t.Fatalf("expected white king symbol in render:\n%s", out)
	}
}

// mustCoords is for map literals where a *testing.T is awkward; the
// coordinates in those literals are static and always on board.
func mustCoords(row, col int) Square {
	s, ok := SquareFromCoords(row, col)
	if !ok {
		panic("bad test coordinates")
	}
	return s
}

func TestSquareFromCoordsBounds(t *testing.T) {
	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{7, 7, true},
		{-1, 4, false},
		{8, 0, false},
		{3, -1, false},
		{3, 8, false},
	}
	for _, tt := range tests {
		if _, ok := SquareFromCoords(tt.row, tt.col); ok != tt.ok {
			t.Fatalf("SquareFromCoords(%d,%d) ok=%v, want %v", tt.row, tt.col, ok, tt.ok)
		}
	}
}

func TestOccupancyMatchesGrid(t *testing.T) {
	b := NewBoard()
	black := b.Occupancy(Black)
	white := b.Occupancy(White)

	if black&white != 0 {
		t.Fatalf("occupancy sets overlap")
	}
	black.Iter(func(s Square) {
		p, ok := b.PieceAt(s)
		if !ok || p.Color != Black {
			t.Fatalf("black occupancy lists %s which holds no black piece", s)
		}
	})
	if black.Count() != 12 || white.Count() != 12 {
		t.Fatalf("expected 12/12 occupancy, got %d/%d", black.Count(), white.Count())
	}
}
