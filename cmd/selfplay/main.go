// path: cmd/selfplay/main.go
// Random self-play driver for the draughts engine. Runs games between
// two random movers and reports results; -show-final dumps each final
// position as a text grid.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"checkers_poc/internal/game"
	"checkers_poc/internal/match"
)

func main() {
	games := flag.Int("games", getenvInt("DRAUGHTS_GAMES", 10), "number of games to play")
	concurrency := flag.Int("concurrency", getenvInt("DRAUGHTS_CONCURRENCY", 4), "games played in parallel")
	seed := flag.Int64("seed", getenvInt64("DRAUGHTS_SEED", time.Now().UnixNano()), "base RNG seed")
	maxPlies := flag.Int("max-plies", getenvInt("DRAUGHTS_MAX_PLIES", match.DefaultMaxPlies), "ply cap per game")
	showFinal := flag.Bool("show-final", false, "print the final board of each game")
	flag.Parse()

	if *games < 1 {
		log.Fatalf("games must be >= 1, got %d", *games)
	}

	log.Printf("Self-play: %d games, concurrency %d, seed %d", *games, *concurrency, *seed)

	newRunner := func(i int) *match.Runner {
		r := match.NewRunner(
			match.NewRandomPlayer(*seed+int64(2*i)),
			match.NewRandomPlayer(*seed+int64(2*i+1)),
		)
		r.SetMaxPlies(*maxPlies)
		return r
	}

	results := match.PlayAll(*games, *concurrency, newRunner)

	var tally [2]int
	drawn := 0
	for _, res := range results {
		outcome := "drawn at ply cap"
		if res.HasWinner {
			outcome = res.Winner.String() + " wins"
			tally[res.Winner.Index()]++
		} else {
			drawn++
		}
		log.Printf("game %s: %s after %d plies", res.ID, outcome, res.Plies)
		if *showFinal {
			log.Printf("final position:\n%s", res.Final.String())
		}
	}

	log.Printf("tally: black %d, white %d, undecided %d",
		tally[game.Black.Index()], tally[game.White.Index()], drawn)
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
