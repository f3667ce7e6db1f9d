package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/haya28/othello/ai/bestfirst"
	"github.com/haya28/othello/automatic"
	"github.com/haya28/othello/config"
	"github.com/haya28/othello/equity"
	"github.com/haya28/othello/game"
	"github.com/haya28/othello/gamestore"
	"github.com/haya28/othello/move"
)

// ShellController drives the interactive game: it owns the authoritative
// game state, prompts the human, and invokes the solver for the AI side.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame *game.Game
	solver  *bestfirst.Solver
	weights equity.Weights
	store   *gamestore.Store
	saved   bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates the controller and its readline instance.
// store may be nil when persistence is disabled.
func NewShellController(cfg *config.Config, store *gamestore.Store) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mothello>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "othello_readline.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}

	weights := equity.DefaultWeights()
	if cfg.WeightsFile != "" {
		weights, err = equity.LoadWeights(cfg.WeightsFile)
		if err != nil {
			log.Error().Err(err).Msg("falling back to default weights")
			weights = equity.DefaultWeights()
		}
	}
	return &ShellController{l: l, cfg: cfg, weights: weights, store: store}
}

func (sc *ShellController) newGame() {
	sc.curGame = game.NewGame()
	sc.solver = bestfirst.NewSolver(sc.cfg.AISide(), sc.cfg.SearchDepth,
		equity.NewPositionalCalculator(sc.weights))
	sc.saved = false
	showMessage(fmt.Sprintf("New game. The computer plays %v.", sc.cfg.AISide()),
		sc.l.Stderr())
	sc.advance()
}

// advance plays out every turn that does not need human input: the AI
// side's moves (or passes) and any forced pass for the human. It stops
// when the human can move or the game ends.
func (sc *ShellController) advance() {
	out := sc.l.Stderr()
	g := sc.curGame
	for g.Playing() {
		if g.SideToMove() == sc.solver.Side() {
			m := sc.solver.GetMove(g.Board())
			if m == nil {
				showMessage(fmt.Sprintf("%v (computer) passes.", g.SideToMove()), out)
				g.Pass()
				continue
			}
			if err := g.PlayMove(m); err != nil {
				// The solver only proposes moves the board generated, so
				// this would indicate a bug in the engine itself.
				log.Error().Err(err).Msgf("engine returned illegal move %v", m)
				g.Pass()
				continue
			}
			showMessage(fmt.Sprintf("Computer plays %v.", m), out)
			continue
		}
		if len(g.ValidMoves()) == 0 {
			showMessage(fmt.Sprintf("%v has no legal moves and must pass.",
				g.SideToMove()), out)
			g.Pass()
			continue
		}
		break
	}
	showMessage(g.ToDisplayText(), out)
	if !g.Playing() {
		sc.finishGame()
	}
}

func (sc *ShellController) finishGame() {
	if sc.store == nil || sc.saved {
		return
	}
	g := sc.curGame
	black, white := g.Scores()
	err := sc.store.SaveGame(gamestore.GameRecord{
		PlayedAt:   time.Now(),
		Winner:     g.Winner().String(),
		BlackScore: black,
		WhiteScore: white,
		Moves:      g.HistoryText(),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not save game record")
		return
	}
	sc.saved = true
}

// forceAIMove runs the solver for whichever side is to move and applies
// its choice to the game, passing when the solver finds nothing. The
// returned move is what was played; nil means a pass.
func forceAIMove(g *game.Game, depth int, weights equity.Weights) (*move.Move, error) {
	solver := bestfirst.NewSolver(g.SideToMove(), depth,
		equity.NewPositionalCalculator(weights))
	m := solver.GetMove(g.Board())
	if m == nil {
		g.Pass()
		return nil, nil
	}
	if err := g.PlayMove(m); err != nil {
		return nil, err
	}
	return m, nil
}

// aiMove lets the engine move for the side currently to move, whichever
// side that is. With the computer's own turns auto-played this acts as a
// "move for me" command for the human side.
func (sc *ShellController) aiMove() {
	out := sc.l.Stderr()
	if sc.curGame == nil || !sc.curGame.Playing() {
		showMessage("No game in progress; type `new` to start one.", out)
		return
	}
	side := sc.curGame.SideToMove()
	m, err := forceAIMove(sc.curGame, sc.cfg.SearchDepth, sc.weights)
	if err != nil {
		log.Error().Err(err).Msg("engine returned unplayable move")
		showMessage("Engine error: "+err.Error(), out)
		return
	}
	if m == nil {
		showMessage(fmt.Sprintf("%v passes.", side), out)
	} else {
		showMessage(fmt.Sprintf("%v plays %v.", side, m), out)
	}
	sc.advance()
}

func (sc *ShellController) humanMove(rowStr, colStr string) {
	out := sc.l.Stderr()
	g := sc.curGame
	if g == nil || !g.Playing() {
		showMessage("No game in progress; type `new` to start one.", out)
		return
	}
	if g.SideToMove() == sc.solver.Side() {
		showMessage("It is the computer's turn.", out)
		return
	}
	m, err := move.FromStrings(rowStr, colStr)
	if err != nil {
		showMessage("Invalid input: "+err.Error(), out)
		return
	}
	if err := g.PlayMove(m); err != nil {
		showMessage(fmt.Sprintf("%v is not a legal move; type `moves` to list them.", m), out)
		return
	}
	sc.advance()
}

func (sc *ShellController) showMoves() {
	out := sc.l.Stderr()
	if sc.curGame == nil || !sc.curGame.Playing() {
		showMessage("No game in progress.", out)
		return
	}
	moves := sc.curGame.ValidMoves()
	if len(moves) == 0 {
		showMessage("No legal moves; you must pass.", out)
		return
	}
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	showMessage("Legal moves: "+strings.Join(strs, " "), out)
}

func (sc *ShellController) showHistory() {
	out := sc.l.Stderr()
	if sc.store == nil {
		showMessage("Game persistence is disabled.", out)
		return
	}
	recs, err := sc.store.RecentGames(10)
	if err != nil {
		showMessage("Could not read game history: "+err.Error(), out)
		return
	}
	if len(recs) == 0 {
		showMessage("No finished games recorded yet.", out)
		return
	}
	for _, rec := range recs {
		showMessage(fmt.Sprintf("%s  %s  %d-%d",
			rec.PlayedAt.Format("2006-01-02 15:04"), rec.Winner,
			rec.BlackScore, rec.WhiteScore), out)
	}
}

func (sc *ShellController) selfplay(arg string) {
	out := sc.l.Stderr()
	n := 10
	if arg != "" {
		var err error
		n, err = strconv.Atoi(arg)
		if err != nil || n < 1 {
			showMessage("selfplay takes a positive number of games", out)
			return
		}
	}
	showMessage(fmt.Sprintf("Playing %d games against a random opponent...", n), out)
	runner := automatic.NewGameRunner(sc.cfg, sc.weights)
	tally, err := runner.CompareBots(n)
	if err != nil {
		showMessage("selfplay failed: "+err.Error(), out)
		return
	}
	showMessage(tally.String(), out)
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a new game\n")
	io.WriteString(w, "show - redraw the board\n")
	io.WriteString(w, "moves - list your legal moves\n")
	io.WriteString(w, "play <row> <col> - place a disc (or just type the two numbers)\n")
	io.WriteString(w, "ai - let the engine move for the side to move\n")
	io.WriteString(w, "score - show the disc counts\n")
	io.WriteString(w, "selfplay [n] - play n computer-vs-random games (default 10)\n")
	io.WriteString(w, "history - show recently finished games\n")
	io.WriteString(w, "exit - leave the shell\n")
}

// Loop reads and executes commands until the user exits.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	out := sc.l.Stderr()
	showMessage("Type `new` to start a game, `help` for commands.", out)

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit", "bye", "quit":
			return
		case "help":
			usage(out)
		case "new":
			sc.newGame()
		case "show":
			if sc.curGame == nil {
				showMessage("No game in progress.", out)
			} else {
				showMessage(sc.curGame.ToDisplayText(), out)
			}
		case "moves":
			sc.showMoves()
		case "score":
			if sc.curGame == nil {
				showMessage("No game in progress.", out)
			} else {
				black, white := sc.curGame.Scores()
				showMessage(fmt.Sprintf("Black %d - %d White", black, white), out)
			}
		case "play":
			if len(fields) != 3 {
				showMessage("usage: play <row> <col>", out)
			} else {
				sc.humanMove(fields[1], fields[2])
			}
		case "ai":
			sc.aiMove()
		case "selfplay":
			arg := ""
			if len(fields) > 1 {
				arg = fields[1]
			}
			sc.selfplay(arg)
		case "history":
			sc.showHistory()
		default:
			// Two bare integers are accepted as a move, matching the
			// row/column prompts of a plain terminal game.
			if len(fields) == 2 {
				sc.humanMove(fields[0], fields[1])
			} else {
				showMessage("Unknown command; type `help`.", out)
			}
		}
	}
}
