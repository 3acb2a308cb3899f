package metrics

import (
	"breakthrough/game"
	"time"
)

type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int
	Depth     int
	AlphaBeta bool
	Score     float64
	TimedOut  bool
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Winner         game.Side
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the counters of a single search call. It is not safe for concurrent use.
type Collector interface {
	Start(depth int, alphaBeta bool)
	AddNode()
	Nodes() int
	SetTimedOut()
	Complete(score float64) SearchMetric
}

type collector struct {
	depth     int
	alphaBeta bool
	startTime time.Time
	nodes     int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, alphaBeta bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.alphaBeta = alphaBeta
	m.nodes = 0
	m.timedOut = false
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) Nodes() int {
	return m.nodes
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Depth:     m.depth,
		AlphaBeta: m.alphaBeta,
		Score:     score,
		TimedOut:  m.timedOut,
	}
}
