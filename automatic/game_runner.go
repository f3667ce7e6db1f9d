// Package automatic contains the logic for unattended bot-vs-bot games,
// used to sanity-check the search engine against a random baseline.
package automatic

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/haya28/othello/ai/bot"
	"github.com/haya28/othello/board"
	"github.com/haya28/othello/config"
	"github.com/haya28/othello/equity"
	"github.com/haya28/othello/game"
)

// GameRunner plays full games between two AI players.
type GameRunner struct {
	cfg     *config.Config
	weights equity.Weights
}

func NewGameRunner(cfg *config.Config, weights equity.Weights) *GameRunner {
	return &GameRunner{cfg: cfg, weights: weights}
}

// playGame runs one game to completion and returns the winning side
// (board.Empty for a draw).
func (r *GameRunner) playGame(players [2]bot.AIPlayer) board.CellValue {
	g := game.NewGame()
	for g.Playing() {
		var mover bot.AIPlayer
		for _, p := range players {
			if p.Side() == g.SideToMove() {
				mover = p
			}
		}
		m := mover.BestMove(g.Board())
		if m == nil {
			g.Pass()
			continue
		}
		if err := g.PlayMove(m); err != nil {
			// A bot produced a move its own board rejected; treat it as
			// a pass rather than aborting the run.
			log.Error().Err(err).Msgf("%v returned bad move %v", mover.Name(), m)
			g.Pass()
		}
	}
	return g.Winner()
}

// Tally is the aggregate outcome of a comparison run, from the search
// bot's point of view.
type Tally struct {
	Games  int
	Wins   int
	Losses int
	Draws  int
}

func (t Tally) String() string {
	return fmt.Sprintf("%d games: %d wins, %d losses, %d draws",
		t.Games, t.Wins, t.Losses, t.Draws)
}

// CompareBots plays n games of the search bot (as the configured AI side)
// against a random-move opponent, up to the configured number of games in
// flight at once.
func (r *GameRunner) CompareBots(n int) (Tally, error) {
	searchSide := r.cfg.AISide()
	var mu sync.Mutex
	tally := Tally{}

	eg := errgroup.Group{}
	eg.SetLimit(r.cfg.SelfplayConcurrency)
	for i := 0; i < n; i++ {
		gameNum := i
		eg.Go(func() error {
			players := [2]bot.AIPlayer{
				bot.NewSearchBot(searchSide, r.cfg.SearchDepth,
					equity.NewPositionalCalculator(r.weights)),
				bot.NewRandomBot(searchSide.Opponent()),
			}
			winner := r.playGame(players)
			log.Debug().Msgf("selfplay game %d winner: %v", gameNum, winner)
			mu.Lock()
			defer mu.Unlock()
			tally.Games++
			switch winner {
			case searchSide:
				tally.Wins++
			case searchSide.Opponent():
				tally.Losses++
			default:
				tally.Draws++
			}
			return nil
		})
	}
	err := eg.Wait()
	return tally, err
}
