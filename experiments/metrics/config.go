package metrics

import "time"

// AgentConfig describes one searcher taking part in an experiment.
type AgentConfig struct {
	ID             int
	Heuristic      string
	Depth          int
	AlphaBeta      bool
	Duration       time.Duration // Per-move budget, 0 for none
	Seed           uint64        // Jitter seed, 0 disables jitter
	OwnPerspective bool
}
