// path: internal/game/movegen.go
package game

// LegalMoves enumerates every legal move for the side to move. Captures
// are mandatory: if any piece can jump, only capture chains are returned
// and simple moves are discarded, even for pieces with no jump of their own.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	var captures []Move

	for from := Square(0); from < 64; from++ {
		if !b.ownsTurn(from) {
			continue
		}
		chains := b.captureChains(from)
		if len(chains) > 0 {
			captures = append(captures, chains...)
			continue
		}
		moves = append(moves, b.simpleMoves(from)...)
	}

	if len(captures) > 0 {
		return captures
	}
	return moves
}

// simpleMoves returns the one-square diagonal steps available to the
// piece on from, one singleton-path Move per empty destination.
func (b *Board) simpleMoves(from Square) []Move {
	p, ok := b.PieceAt(from)
	if !ok {
		return nil
	}
	var moves []Move
	for _, d := range directionsFor(p) {
		to, ok := SquareFromCoords(from.Row()+d.dr, from.Col()+d.dc)
		if !ok || !b.emptyAt(to) {
			continue
		}
		moves = append(moves, Move{From: from, Path: []Square{to}})
	}
	return moves
}

// captureChains returns every maximal jump sequence for the piece on
// from. A chain is recorded only when no further jump extends it, so no
// returned chain is a prefix of another from the same start.
func (b *Board) captureChains(from Square) []Move {
	p, ok := b.PieceAt(from)
	if !ok {
		return nil
	}
	var chains []Move
	b.searchCaptures(p, from, from, nil, nil, 0, &chains)
	return chains
}

// searchCaptures extends the chain from cur by every admissible jump.
// The board is never mutated during the search: jumped men stay visible
// as opponents, and the visited set forbids landing on the same square
// twice within one chain. Path and capture slices are copied per branch
// so sibling recursions cannot alias each other.
func (b *Board) searchCaptures(p Piece, start, cur Square, path, caps []Square, visited Bitboard, out *[]Move) {
	extended := false
	for _, d := range directionsFor(p) {
		land, ok := SquareFromCoords(cur.Row()+2*d.dr, cur.Col()+2*d.dc)
		if !ok || visited.Has(land) || !b.emptyAt(land) {
			continue
		}
		mid, _ := SquareFromCoords(cur.Row()+d.dr, cur.Col()+d.dc)
		if !b.opponentAt(mid, p.Color) {
			continue
		}
		extended = true
		nextPath := append(append([]Square(nil), path...), land)
		nextCaps := append(append([]Square(nil), caps...), mid)
		b.searchCaptures(p, start, land, nextPath, nextCaps, visited.Add(land), out)
	}
	if !extended && len(path) > 0 {
		*out = append(*out, Move{From: start, Path: path, Captures: caps})
	}
}
