package experiments

import (
	"breakthrough/engine"
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"
	"breakthrough/player"
	"breakthrough/searcher"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MatchUp plays Agent1 as game.First against Agent2 as game.Second.
type MatchUp struct {
	Agent1       metrics.AgentConfig
	Agent2       metrics.AgentConfig
	Games        int
	Concurrency  int // Games in flight at once
	MaxTurns     int
	StartingSide game.Side
	Observer     func(engine.Turn) // Called after every move of every game
}

type Experiment struct {
	Name      string
	OutputDir string // CSV files are written below it when set
	MatchUps  []MatchUp
}

// Run plays every match-up of exp in order and returns one tally per match-up.
func Run(ctx context.Context, exp Experiment) ([]Tally, error) {
	count := 0
	tallies := make([]Tally, 0, len(exp.MatchUps))
	configs := []metrics.AgentConfig{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchUp.Agent1, matchUp.Agent2)

		results, err := RunMatchUp(ctx, matchUp)
		if err != nil {
			return tallies, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		tallies = append(tallies, NewTally(results))
		configs = appendConfig(configs, matchUp.Agent1)
		configs = appendConfig(configs, matchUp.Agent2)

		for _, result := range results {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.Agent1.ID,
				Agent2:     matchUp.Agent2.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir == "" {
		return tallies, nil
	}
	if err := store(exp, configs, gameRecords, moveRecords); err != nil {
		return tallies, err
	}
	return tallies, nil
}

func store(exp Experiment, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

func appendConfig(configs []metrics.AgentConfig, config metrics.AgentConfig) []metrics.AgentConfig {
	for _, c := range configs {
		if c.ID == config.ID {
			return configs
		}
	}
	return append(configs, config)
}

// RunMatchUp plays all games of matchUp and returns their results in game order. Each game
// builds its own searchers, so games share no state and run concurrently.
func RunMatchUp(ctx context.Context, matchUp MatchUp) ([]engine.Result, error) {
	games := matchUp.Games
	if games <= 0 {
		games = meta.GAMES
	}
	concurrency := matchUp.Concurrency
	if concurrency <= 0 {
		concurrency = meta.CONCURRENCY
	}

	results := make([]engine.Result, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d...", i+1, games)
			result, err := PlayGame(ctx, matchUp, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			log.Info().Msgf("completed game %d with winner: %s", i+1, result.Winner.Name())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PlayGame plays the index-th game of matchUp. Jitter seeds are offset by index so repeated
// games differ while staying reproducible.
func PlayGame(ctx context.Context, matchUp MatchUp, index int) (engine.Result, error) {
	first, err := NewPlayer(matchUp.Agent1, game.First, index)
	if err != nil {
		return engine.Result{}, err
	}
	second, err := NewPlayer(matchUp.Agent2, game.Second, index)
	if err != nil {
		return engine.Result{}, err
	}

	options := []engine.Option{engine.WithMaxTurns(matchUp.MaxTurns)}
	if matchUp.Observer != nil {
		options = append(options, engine.WithObserver(matchUp.Observer))
	}
	if matchUp.StartingSide.Valid() {
		options = append(options, engine.WithStartingSide(matchUp.StartingSide))
	}
	e := engine.LocalEngine(first, second, options...)
	return e.Run(ctx)
}

// NewPlayer builds the player described by config for side: a random baseline when the
// heuristic is player.RandomName, a searcher otherwise.
func NewPlayer(config metrics.AgentConfig, side game.Side, index int) (engine.Player, error) {
	if config.Heuristic == player.RandomName {
		return player.NewRandom(side, config.Seed+uint64(index))
	}
	return NewSearcher(config, side, index)
}

// NewSearcher builds the searcher described by config for side.
func NewSearcher(config metrics.AgentConfig, side game.Side, index int) (*searcher.Minimax, error) {
	jitter := game.NoJitter
	if config.Seed != 0 {
		jitter = game.NewSeededJitter(config.Seed + uint64(index))
	}
	heuristic, err := game.LookupHeuristic(config.Heuristic, jitter)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	options := []searcher.Option{searcher.WithDepth(config.Depth)}
	if config.AlphaBeta {
		options = append(options, searcher.WithAlphaBeta())
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.OwnPerspective {
		options = append(options, searcher.WithOwnPerspective())
	}
	return searcher.NewMinimax(side, heuristic, options...)
}
