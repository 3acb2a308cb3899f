package game

import "golang.org/x/exp/rand"

// Jitter supplies the small tie-breaking term added to heuristic scores.
type Jitter interface {
	Noise() float64
}

type randomJitter struct {
	rng *rand.Rand
}

// NewJitter draws noise from src in hundredths between 0 and 0.99. The returned Jitter is not
// safe for concurrent use; give each searcher its own.
func NewJitter(src rand.Source) Jitter {
	return &randomJitter{rng: rand.New(src)}
}

// NewSeededJitter is NewJitter over a fresh source seeded with seed.
func NewSeededJitter(seed uint64) Jitter {
	return NewJitter(rand.NewSource(seed))
}

func (j *randomJitter) Noise() float64 {
	return float64(j.rng.Intn(100)) / 100
}

type noJitter struct{}

func (noJitter) Noise() float64 { return 0 }

// NoJitter disables the tie-breaking term, making heuristics fully deterministic.
var NoJitter Jitter = noJitter{}
