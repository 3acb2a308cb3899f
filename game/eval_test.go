package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixedJitter float64

func (j fixedJitter) Noise() float64 { return float64(j) }

func TestMaterialHeuristics(t *testing.T) {
	gs := mustParse(t,
		"BB......",
		"B.......",
		"........",
		"........",
		"........",
		"........",
		"......W.",
		".....WWW",
	)

	t.Run("defensive counts own pieces", func(t *testing.T) {
		h := DefensiveMaterial(NoJitter)
		require.Equal(t, 6.0, h(gs, First))
		require.Equal(t, 8.0, h(gs, Second))
	})

	t.Run("offensive counts missing opponent pieces", func(t *testing.T) {
		h := OffensiveMaterial(NoJitter)
		require.Equal(t, 2.0*(OffensiveCap-4), h(gs, First))
		require.Equal(t, 2.0*(OffensiveCap-3), h(gs, Second))
	})

	t.Run("noise is added", func(t *testing.T) {
		h := DefensiveMaterial(fixedJitter(0.25))
		require.Equal(t, 6.25, h(gs, First))
	})
}

func TestDefensivePositional(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		h := DefensivePositional(NoJitter)
		gs := NewState()
		// Four pieces on the side columns, nobody across the middle
		require.Equal(t, 8.0, h(gs, First))
		require.Equal(t, 8.0, h(gs, Second))
	})

	t.Run("intruders in the home half", func(t *testing.T) {
		h := DefensivePositional(NoJitter)
		gs := mustParse(t,
			"B......B",
			"........",
			"..W.....",
			"...W....",
			"....W...",
			"........",
			"........",
			"W.......",
		)
		require.Equal(t, 2.0*2-2, h(gs, First), "Two white pieces are in rows 0-3")
		require.Equal(t, 2.0*1-0, h(gs, Second), "No black piece is in rows 4-7")
	})
}

func TestOffensivePositional(t *testing.T) {
	h := OffensivePositional(NoJitter)

	t.Run("starting position", func(t *testing.T) {
		gs := NewState()
		require.Equal(t, 2.0, h(gs, First))
		require.Equal(t, 2.0, h(gs, Second))
	})

	t.Run("measured from each side's home edge", func(t *testing.T) {
		gs := mustParse(t,
			"B.......",
			"..W.....",
			"........",
			"........",
			"........",
			"...B....",
			"........",
			"......W.",
		)
		require.Equal(t, 10.0, h(gs, First))
		require.Equal(t, 12.0, h(gs, Second))
	})

	t.Run("no pieces", func(t *testing.T) {
		gs := mustParse(t, "B.......")
		require.Equal(t, -2.0, h(gs, Second))
	})
}

func TestJitter(t *testing.T) {
	t.Run("hundredths below one", func(t *testing.T) {
		j := NewSeededJitter(42)
		for i := 0; i < 1000; i++ {
			noise := j.Noise()
			require.GreaterOrEqual(t, noise, 0.0)
			require.LessOrEqual(t, noise, 0.99)
			require.InDelta(t, noise, float64(int(noise*100+0.5))/100, 1e-9)
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a := NewJitter(rand.NewSource(9))
		b := NewJitter(rand.NewSource(9))
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Noise(), b.Noise())
		}
	})

	t.Run("disabled", func(t *testing.T) {
		require.Zero(t, NoJitter.Noise())
	})
}

func TestLookupHeuristic(t *testing.T) {
	gs := NewState()
	for _, name := range []string{"def1", "1", "OFF1", " def2 ", "offensive-positional"} {
		h, err := LookupHeuristic(name, NoJitter)
		require.NoError(t, err, name)
		require.NotNil(t, h)
		h(gs, First)
	}

	h, err := LookupHeuristic("off1", NoJitter)
	require.NoError(t, err)
	require.Equal(t, OffensiveMaterial(NoJitter)(gs, Second), h(gs, Second))

	_, err = LookupHeuristic("greedy", NoJitter)
	require.ErrorContains(t, err, "def1, off1, def2, off2")
	require.Equal(t, []string{"def1", "off1", "def2", "off2"}, HeuristicNames())
}
