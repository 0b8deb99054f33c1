// path: internal/game/moves.go
package game

// apply mutates the board to reflect a move already known to be legal:
// clear the start, walk the path removing the jumped piece on each
// two-row step, promote a man that ends on its far row, place the piece
// on the final square, then hand the turn to the opponent.
func (b *Board) apply(m Move) {
	p, _ := b.PieceAt(m.From)
	b.clear(m.From)

	cur := m.From
	last := len(m.Path) - 1
	for i, next := range m.Path {
		if abs(next.Row()-cur.Row()) == 2 {
			mid, _ := SquareFromCoords((next.Row()+cur.Row())/2, (next.Col()+cur.Col())/2)
			b.clear(mid)
		}
		if i == last {
			if p.Rank == Man && next.Row() == promotionRow(p.Color) {
				p.Rank = King
			}
			b.put(next, p)
		}
		cur = next
	}

	b.turn = b.turn.Opposite()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
