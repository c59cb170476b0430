package callgen

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"elevsim/src/types"
)

// Source is the randomness the generator draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	NormFloat64() float64
}

// Generator produces a stream of calls biased towards the lobby.
type Generator struct {
	rnd Source
}

// New returns a generator that yields the same calls for the same seed.
func New(seed uint64) *Generator {
	return NewWithSource(rand.New(rand.NewPCG(seed, seed)))
}

func NewWithSource(rnd Source) *Generator {
	return &Generator{rnd: rnd}
}

// Generate returns calls for every tick in [start, end) in time order.
// Calls whose call floor equals the destination are dropped.
func (g *Generator) Generate(start, end, floors int) []types.Call {
	var calls []types.Call
	for t := start; t < end; t++ {
		n := g.clampedLogNormal(-2.5, 1, 0, 5)
		for range n {
			callFloor := g.random0Weighted(floors, 2)
			destinationFloor := g.random0Weighted(floors, 2)
			if callFloor == destinationFloor {
				continue
			}
			calls = append(calls, types.Call{
				Time:             t,
				CallFloor:        callFloor,
				DestinationFloor: destinationFloor,
				People:           g.clampedLogNormal(0, 1, 1, 5),
			})
		}
	}
	slog.Info("Generated calls", "count", len(calls), "start", start, "end", end, "floors", floors)
	return calls
}

// random0Weighted draws uniformly from [0, high*factor) and folds everything at or
// above high onto floor 0.
func (g *Generator) random0Weighted(high, factor int) int {
	if high <= 0 {
		return 0
	}
	n := g.rnd.IntN(high * factor)
	if n >= high {
		n = 0
	}
	return n
}

// clampedLogNormal draws from a log-normal distribution, rounds half to even and clamps to [low, high].
func (g *Generator) clampedLogNormal(mean, sdev float64, low, high int) int {
	v := math.Min(math.Exp(mean+sdev*g.rnd.NormFloat64()), float64(high))
	return max(low, int(math.RoundToEven(v)))
}
