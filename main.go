package main

import (
	"breakthrough/engine"
	"breakthrough/experiments"
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if lvl, err := zerolog.ParseLevel(cfg.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func run(ctx context.Context, cfg config) error {
	starting, err := game.ParseSide(cfg.starting)
	if err != nil {
		return err
	}
	agent := func(id int, heuristic string) metrics.AgentConfig {
		return metrics.AgentConfig{
			ID:             id,
			Heuristic:      heuristic,
			Depth:          cfg.depth,
			AlphaBeta:      cfg.alphaBeta,
			Duration:       cfg.duration,
			Seed:           cfg.seed * uint64(id),
			OwnPerspective: cfg.ownPerspective,
		}
	}
	matchUp := experiments.MatchUp{
		Agent1:       agent(1, cfg.black),
		Agent2:       agent(2, cfg.white),
		Games:        cfg.games,
		Concurrency:  cfg.concurrency,
		MaxTurns:     cfg.maxTurns,
		StartingSide: starting,
	}
	if cfg.render {
		matchUp.Observer = render
	}

	tallies, err := experiments.Run(ctx, experiments.Experiment{
		Name:      cfg.name,
		OutputDir: cfg.output,
		MatchUps:  []experiments.MatchUp{matchUp},
	})
	if err != nil {
		return err
	}
	for _, tally := range tallies {
		if err := tally.Write(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func render(turn engine.Turn) {
	fmt.Printf("%s: %v\n%s\n", turn.Player, turn.Move, turn.State)
}
