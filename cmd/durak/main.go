// Command durak deals and plays out one game of Durak from the command
// line, with seats assigned from a literal configuration the way
// main.py's __main__ block does, and flag-based overrides layered on top
// in the idiom of darwindeck's cmd/evolve/main.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jorisperrenet/durak/engine"
	"github.com/jorisperrenet/durak/mcts"
	"github.com/jorisperrenet/durak/player"
)

func main() {
	var (
		seed            = flag.Int64("seed", 0, "random seed (0 picks a time-based seed)")
		computerShuffle = flag.Bool("computer-shuffle", true, "let the program pick the bottom card; with false the game does not start, as no bottom card is supplied")
		printInfo       = flag.Bool("print-info", true, "log each chosen action as the game proceeds")
		seats           = flag.String("seats", "random,random,random", "comma-separated seat kinds: random, human, fpv, determinized, ismcts")
		iterations      = flag.Int("iterations", 500, "search iterations per decision for fpv/ismcts seats")
		outerIterations = flag.Int("outer-iterations", 50, "outer deal count per decision for determinized seats")
		innerIterations = flag.Int("inner-iterations", 50, "inner playout count per deal for determinized seats")
		scoring         = flag.String("scoring", "visits", "root-action scoring for search seats: visits or winrate")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var scoringMode mcts.ScoringMode
	switch strings.TrimSpace(strings.ToLower(*scoring)) {
	case "visits":
		scoringMode = mcts.ScoringVisitCount
	case "winrate":
		scoringMode = mcts.ScoringWinRate
	default:
		log.Fatalf("durak: unknown scoring mode %q", *scoring)
	}

	gamePlayers := buildSeats(*seats, rng, *iterations, *outerIterations, *innerIterations, scoringMode)

	gs, err := engine.NewGameState(gamePlayers, *computerShuffle, gamePlayers[0].Name(), nil, *printInfo, rng)
	if err != nil {
		log.Fatalf("durak: could not start game: %v", err)
	}
	// player.Human reveals its own hand lazily, inside ChooseAction, and
	// only under a computer shuffle — a manually-shuffled human never has
	// their hand bound at all (spec §D.2). Every other seat always sees
	// its own cards immediately.
	for _, p := range gamePlayers {
		if _, ok := p.(*player.Human); ok {
			continue
		}
		p.MakeCardsKnown(gs)
	}

	for !gs.Terminal {
		gs.Next()
	}

	fmt.Printf("%s lost.\n", gs.Players[gs.LoserIdx].Name())
}

func buildSeats(spec string, rng *rand.Rand, iterations, outerIterations, innerIterations int, scoring mcts.ScoringMode) []engine.Player {
	kinds := strings.Split(spec, ",")
	out := make([]engine.Player, 0, len(kinds))
	for i, kind := range kinds {
		name := fmt.Sprintf("P%d", i+1)
		switch strings.TrimSpace(strings.ToLower(kind)) {
		case "human":
			out = append(out, player.NewHuman(name, rng, os.Stdin, os.Stdout))
		case "fpv":
			p := player.NewISMCTSFPV(name, rng, iterations)
			p.Scoring = scoring
			out = append(out, p)
		case "determinized":
			p := player.NewDeterminizedMCTS(name, rng, outerIterations, innerIterations)
			p.Scoring = scoring
			out = append(out, p)
		case "ismcts":
			p := player.NewISMCTS(name, rng, iterations)
			p.Scoring = scoring
			out = append(out, p)
		default:
			out = append(out, player.NewRandom(name, rng))
		}
	}
	return out
}
