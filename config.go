package main

import (
	"breakthrough/game"
	"breakthrough/meta"
	"breakthrough/player"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config is read from the environment (and a .env file if present), then overridden by flags.
type config struct {
	black          string
	white          string
	depth          int
	alphaBeta      bool
	ownPerspective bool
	duration       time.Duration
	seed           uint64
	games          int
	concurrency    int
	maxTurns       int
	starting       string
	render         bool
	output         string
	name           string
	logLevel       string
}

func loadConfig(args []string) (config, error) {
	_ = godotenv.Load()

	var cfg config
	fs := flag.NewFlagSet("breakthrough", flag.ContinueOnError)
	names := strings.Join(append(game.HeuristicNames(), player.RandomName), ", ")
	fs.StringVar(&cfg.black, "black", getEnv("BLACK", "off1"), "Heuristic of the black player ("+names+")")
	fs.StringVar(&cfg.white, "white", getEnv("WHITE", "def2"), "Heuristic of the white player ("+names+")")
	fs.IntVar(&cfg.depth, "depth", getEnvInt("DEPTH", meta.DEFAULT_DEPTH), "Search depth in plies")
	fs.BoolVar(&cfg.alphaBeta, "alphabeta", getEnvBool("ALPHA_BETA", false), "Enable alpha-beta pruning")
	fs.BoolVar(&cfg.ownPerspective, "own-perspective", getEnvBool("OWN_PERSPECTIVE", false), "Score horizon positions from the searching side")
	fs.DurationVar(&cfg.duration, "duration", getEnvDuration("DURATION", 0), "Time budget per move, 0 for none")
	fs.Uint64Var(&cfg.seed, "seed", uint64(getEnvInt("SEED", int(time.Now().UnixNano()&0xffff)+1)), "Tie-break jitter seed, 0 disables jitter")
	fs.IntVar(&cfg.games, "games", getEnvInt("GAMES", meta.GAMES), "Number of games to play")
	fs.IntVar(&cfg.concurrency, "concurrency", getEnvInt("CONCURRENCY", meta.CONCURRENCY), "Games played at once")
	fs.IntVar(&cfg.maxTurns, "max-turns", getEnvInt("MAX_TURNS", meta.MAX_TURNS), "Move limit per game")
	fs.StringVar(&cfg.starting, "starting", getEnv("STARTING", "black"), "Side that moves first")
	fs.BoolVar(&cfg.render, "render", getEnvBool("RENDER", false), "Print the board after every move")
	fs.StringVar(&cfg.output, "output", getEnv("OUTPUT_DIR", ""), "Directory for CSV records, empty to skip")
	fs.StringVar(&cfg.name, "name", getEnv("EXPERIMENT", "matchup"), "Experiment name")
	fs.StringVar(&cfg.logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "Log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.depth <= 0 {
		return cfg, fmt.Errorf("depth must be positive, got %d", cfg.depth)
	}
	if cfg.games <= 0 {
		return cfg, fmt.Errorf("games must be positive, got %d", cfg.games)
	}
	if _, err := game.ParseSide(cfg.starting); err != nil {
		return cfg, err
	}
	if cfg.render {
		cfg.concurrency = 1
	}
	return cfg, nil
}

// Environment variables are prefixed with BREAKTHROUGH_.
func getEnv(k, def string) string {
	if v := os.Getenv("BREAKTHROUGH_" + k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v, err := strconv.Atoi(getEnv(k, "")); err == nil {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v, err := strconv.ParseBool(getEnv(k, "")); err == nil {
		return v
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(k, "")); err == nil {
		return v
	}
	return def
}
