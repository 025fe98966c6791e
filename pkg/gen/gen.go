// Package gen produces random values that satisfy declarative constraints.
//
// # Overview
//
// A [Generator] owns one [random.Source] and exposes three layers on top of
// it:
//
//   - Primitives: [Generator.Int], [Generator.Float], [Generator.String],
//     [Generator.Bool], [Generator.Choice], [Generator.Subset]
//   - Composites built from primitives: [Generator.IntArray],
//     [Generator.Matrix], [Generator.Graph], [Generator.Tree],
//     [Generator.WeightedEdges]
//   - The dispatcher [Generator.GenerateTestCase], which walks a
//     [constraint.Set] in declaration order and returns a [Record]
//
// # Determinism
//
// With a seed, the output of a Generator is an exact function of the seed and
// the sequence of calls made on it. Every primitive consumes a fixed number of
// draws, composites consume draws in a documented order, and the dispatcher
// visits fields in declaration order. Two generators seeded alike and driven
// alike therefore produce identical values.
//
// Reseeding with [Generator.SetSeed] restarts the sequence. Without a seed
// values come from the process-wide math/rand/v2 source.
//
// # Errors
//
// Infeasible or malformed requests are reported as *errors.Error values with
// one of the generation codes (INVALID_RANGE, TOO_MANY_EDGES, ...). Checks run
// before any retry loop is entered, so the sampling loops in
// [Generator.IntArray], [Generator.Graph] and [Generator.WeightedEdges]
// always terminate, although their running time is not bounded by a constant.
//
// A Generator is not safe for concurrent use.
package gen

import "github.com/matzehuels/casegen/pkg/random"

// Version identifies the sequence of values a seeded Generator produces and
// the encoding of its records. Bump it whenever either changes.
const Version = "1"

// Generator draws random values from its source.
type Generator struct {
	src *random.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.src.SetSeed(seed)
	}
}

// WithSource makes the generator draw from src.
func WithSource(src *random.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// New returns a generator. Without options it is unseeded.
func New(opts ...Option) *Generator {
	g := &Generator{src: random.New()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetSeed reseeds the generator. Subsequent draws restart the seeded sequence.
func (g *Generator) SetSeed(seed int64) {
	g.src.SetSeed(seed)
}

// Seeded reports whether the generator has been given a seed.
func (g *Generator) Seeded() bool {
	return g.src.Seeded()
}
