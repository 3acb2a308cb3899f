// meta/meta.go
package meta

// DEFAULT_DEPTH is the number of plies searched per move.
const DEFAULT_DEPTH = 3

// MAX_TURNS bounds the length of a single game.
const MAX_TURNS = 300

// GAMES is the number of games played per match-up.
const GAMES = 1

// CONCURRENCY is the number of games played at once within a match-up.
const CONCURRENCY = 1
