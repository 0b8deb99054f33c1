// path: internal/match/runner.go
// Package match drives whole games against the rules engine: it seats
// two move selectors, loops query-select-apply until the game ends, and
// can fan independent games out across goroutines.
package match

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"checkers_poc/internal/game"
)

// Player chooses one move from a non-empty legal-move set. Selection
// strategy lives entirely outside the engine.
type Player interface {
	Select(moves []game.Move) int
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Select(moves []game.Move) int { return p.rng.Intn(len(moves)) }

// FirstPlayer always picks the first legal move. Deterministic, used in
// tests and as a baseline seat.
type FirstPlayer struct{}

func (FirstPlayer) Select(moves []game.Move) int { return 0 }

// Result records one finished game.
type Result struct {
	ID        string
	Winner    game.Color
	HasWinner bool
	Plies     int
	Final     game.Board
}

// DefaultMaxPlies bounds king-shuffle games that would never starve
// either side of moves.
const DefaultMaxPlies = 512

// Runner plays one game between two seated players.
type Runner struct {
	seats    map[game.Color]Player
	maxPlies int
}

// NewRunner seats the black and white players with the default ply cap.
func NewRunner(black, white Player) *Runner {
	return &Runner{
		seats:    map[game.Color]Player{game.Black: black, game.White: white},
		maxPlies: DefaultMaxPlies,
	}
}

// SetMaxPlies overrides the ply cap. Values below 1 keep the default.
func (r *Runner) SetMaxPlies(n int) {
	if n >= 1 {
		r.maxPlies = n
	}
}

// Play runs a fresh game to completion (or to the ply cap) and returns
// its result. Each game owns its engine, so concurrent Play calls on
// separate Runners never share state.
func (r *Runner) Play() Result {
	eng := game.NewEngine()
	res := Result{ID: uuid.NewString()}

	for res.Plies < r.maxPlies {
		moves := eng.LegalMoves()
		if len(moves) == 0 {
			break
		}
		idx := r.seats[eng.Turn()].Select(moves)
		if idx < 0 || idx >= len(moves) {
			idx = 0
		}
		if err := eng.Move(moves[idx]); err != nil {
			// Moves come straight from enumeration; a rejection here
			// means a seat returned garbage, so forfeit the game.
			break
		}
		res.Plies++
	}

	if winner, ok := eng.Winner(); ok {
		res.Winner = winner
		res.HasWinner = true
	}
	res.Final = eng.Snapshot()
	return res
}

// PlayAll runs n independent games, at most concurrency at a time, and
// returns their results in start order. newRunner receives the game
// index so callers can derive per-game seeds without shared state; the
// games themselves share nothing.
func PlayAll(n, concurrency int, newRunner func(i int) *Runner) []Result {
	if n <= 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > n {
		concurrency = n
	}

	results := make([]Result, n)
	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = newRunner(i).Play()
			}
		}()
	}
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results
}
