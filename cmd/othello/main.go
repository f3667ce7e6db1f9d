package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/haya28/othello/config"
	"github.com/haya28/othello/gamestore"
	"github.com/haya28/othello/shell"
)

var cfgFile = flag.String("config", "", "path to config file (default ./othello.yaml)")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if err := cfg.Load(*cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	var store *gamestore.Store
	if cfg.GameDB != "" {
		var err error
		store, err = gamestore.Open(cfg.GameDB)
		if err != nil {
			log.Error().Err(err).Msg("game persistence disabled")
			store = nil
		} else {
			defer store.Close()
		}
	}

	sc := shell.NewShellController(cfg, store)
	sc.Loop()
}
